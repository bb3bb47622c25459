package main

import (
	"flag"
	"fmt"
	"os"

	"aeronest.backend/pkg/crypto"
)

func generatePasswordHash(password string, cost int) (string, error) {
	return crypto.HashPasswordWithCost(password, cost)
}

func main() {
	password := flag.String("password", "", "password to hash")
	cost := flag.Int("cost", crypto.DefaultCost, "bcrypt cost")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: genhash -password <password> [-cost N]")
		os.Exit(1)
	}

	hash, err := generatePasswordHash(*password, *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
