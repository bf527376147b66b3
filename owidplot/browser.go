// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
)

// openBrowser opens target in the user's browser. $BROWSER may name
// the browser command, with shell-style quoting; otherwise the
// system's opener is used.
func openBrowser(target string) {
	if b := os.Getenv("BROWSER"); b != "" {
		argv, err := shellquote.Split(b)
		if err != nil {
			log.Print("bad $BROWSER: ", err)
		} else if len(argv) > 0 {
			argv = append(argv, target)
			if err := exec.Command(argv[0], argv[1:]...).Start(); err == nil {
				return
			}
		}
	}

	var cmd string
	var args []string
	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default:
		cmd = "xdg-open"
	}
	args = append(args, target)
	if err := exec.Command(cmd, args...).Start(); err != nil {
		log.Print("opening browser: ", err)
	}
}
