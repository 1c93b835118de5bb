package main

import (
	"log"

	"github.com/beanbocchi/courier/internal/testserver"
)

func main() {
	e, err := testserver.New()
	if err != nil {
		log.Panicf("failed to create server: %v", err)
	}

	if err := e.Start(":8080"); err != nil {
		log.Panicf("server stopped: %v", err)
	}
}
