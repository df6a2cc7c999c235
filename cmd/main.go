package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/common-nighthawk/go-figure"
	bannercolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/land-watch/lulc-change-api/internal/api"
	"github.com/land-watch/lulc-change-api/internal/notification"
	"github.com/land-watch/lulc-change-api/internal/properties"
	"github.com/land-watch/lulc-change-api/internal/ui"
)

func printBanner() {
	// Print the banner with go-figure
	figure1 := figure.NewFigure("LULC", "isometric1", true)
	figure2 := figure.NewFigure("Watch", "isometric1", true)
	bannercolor.Cyan(figure1.String())
	bannercolor.Cyan(figure2.String())
	fmt.Println()
}

func recoverWithNotification() {
	if r := recover(); r != nil {
		// Get the function, file, and line where panic occurred
		pc, file, line, ok := runtime.Caller(3) // 3 levels up is often the panic source
		var location string
		if ok {
			fn := runtime.FuncForPC(pc)
			location = fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
		} else {
			location = "Unknown location"
		}

		fmt.Printf("\n\033[31mPANIC: %v\033[0m\n", r)
		fmt.Printf("\033[31mLocation: %s\033[0m\n", location)
		fmt.Printf("\033[31mExiting...\033[0m\n")

		stack := debug.Stack()
		errMessage := fmt.Sprintf("LULC Watch panic:\n\n%v\n\nLocation: %s\n\nStack trace:\n%s", r, location, stack)
		if err := notification.SendDiscordErrorNotification(errMessage); err != nil {
			fmt.Printf("\033[31mFailed to send notification: %s\033[0m\n", err.Error())
		}
		os.Exit(1)
	}
}

func serveAPI() {
	if err := os.MkdirAll(properties.OutputDir(), 0755); err != nil {
		fmt.Printf("\033[31mFailed to create output directory: %s\033[0m\n", err.Error())
		os.Exit(1)
	}

	handler := api.NewHandler()
	addr := properties.ListenAddr()
	fmt.Printf("\033[32mLULC Change Detection API listening on %s\033[0m\n", addr)
	if err := http.ListenAndServe(addr, handler.Routes()); err != nil {
		fmt.Printf("\033[31mServer stopped: %s\033[0m\n", err.Error())
		os.Exit(1)
	}
}

func main() {
	serve := flag.Bool("serve", false, "start the HTTP API instead of the interactive menu")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	defer recoverWithNotification()
	printBanner()

	if *serve {
		serveAPI()
		return
	}
	ui.ShowMenu()
}
