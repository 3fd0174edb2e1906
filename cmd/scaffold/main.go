// cmd/scaffold/main.go
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gregvogt/Scaffold/internal/ui"
)

var version = "dev"

var goodbyes = []string{
	"Goodbye!",
	"See you next time!",
	"Exiting. Have a great day!",
	"Bye for now!",
	"Take care!",
	"Scaffold signing off!",
	"👋 Goodbye!",
	"Thanks for using Scaffold!",
}

func main() {
	// env files hold secrets; refusing to write them as root/admin keeps
	// them out of privileged ownership
	if runningPrivileged() {
		ui.Error("scaffold should not be run with elevated privileges")
		os.Exit(1)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigs
		fmt.Printf("\n%s: %s\n", sig, goodbyes[rand.Intn(len(goodbyes))])
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
