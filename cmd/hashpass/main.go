package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// hashpass prints the bcrypt hash of a password for ADMIN_PASSWORD_HASH.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpass <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(hash))
}
