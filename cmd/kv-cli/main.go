package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
)

// readLimit mirrors the server's per-request read size. One read is one
// response; embedded newlines in a PRINT reply arrive in the same read.
const readLimit = 1024

func main() {
	addr := flag.String("addr", "localhost:3490", "server address to connect to")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to server: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("Connected to server at %s\n", *addr)

	stdin := bufio.NewScanner(os.Stdin)
	buf := make([]byte, readLimit)
	for {
		fmt.Print("Enter command (or 'quit' to exit): ")
		if !stdin.Scan() {
			break
		}
		message := stdin.Text()
		if strings.TrimSpace(message) == "" {
			// Still send it; the server answers empty commands too.
			message = "\n"
		}

		if _, err := conn.Write([]byte(message)); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending message: %v\n", err)
			break
		}
		if strings.EqualFold(strings.TrimSpace(message), "quit") {
			fmt.Println("Exiting client.")
			break
		}

		n, err := conn.Read(buf)
		if err != nil {
			fmt.Println("Server disconnected.")
			break
		}
		fmt.Printf("Response: %s\n", string(buf[:n]))
	}
}
