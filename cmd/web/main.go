package main

import "academy_backend/internal/app"

func main() {
	app.Run()
}
