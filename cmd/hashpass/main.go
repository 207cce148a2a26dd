// cmd/hashpass/main.go
// Generates the bcrypt hash for the operator password, for AUTH_PASS_HASH.
//
// Usage:
//
//	go run ./cmd/hashpass -password testing
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	fmt.Printf("AUTH_PASS_HASH=%s\n", hash)
}
