package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lexgraph/lexgraph"
)

func main() {
	cfg := lexgraph.LoadConfig()

	kb, err := lexgraph.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create knowledge base: %v", err)
	}
	defer kb.Close(context.Background())

	kb.DiagnoseStores(context.Background())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("\n--- Legal AI Knowledge Base ---")
		fmt.Print("\nEnter your query (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(query, "quit") {
			break
		}

		response, err := kb.QueryKnowledgeBase(context.Background(), query)
		if err != nil {
			fmt.Printf("Query failed: %v\n", err)
			continue
		}
		fmt.Println(response)
		fmt.Println("\n" + strings.Repeat("=", 10) + "\n")
	}
}
