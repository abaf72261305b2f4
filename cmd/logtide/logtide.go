package main

import "github.com/logtide/logtide/internal/app"

func main() {
	app.Run()
}
