package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"vsc_battleship/host"
)

// devnet hosts the battleship contract in-process over HTTP so clients
// can be developed without a chain. State lives in memory and resets
// with the process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	contractID := os.Getenv("CONTRACT_ID")
	if contractID == "" {
		contractID = "devnet:battleship"
	}

	port := os.Getenv("DEVNET_PORT")
	if port == "" {
		port = "8080"
	}

	chain := host.NewChain(contractID)

	// Optionally wire a hub so start_game/end_game calls are captured.
	if hub := os.Getenv("HUB_ADDRESS"); hub != "" {
		if _, err := chain.Invoke(contractID, "b_init", `{"hub":"`+hub+`"}`); err != nil {
			log.Fatal("hub initialization failed: ", err)
		}
		log.Println("hub configured:", hub)
	}

	app := host.NewServer(chain)
	log.Println("battleship devnet listening on :" + port)
	log.Fatal(app.Listen(":" + port))
}
