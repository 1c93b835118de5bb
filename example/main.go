package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beanbocchi/courier/internal/testserver"
	"github.com/beanbocchi/courier/pkg/client"
	"github.com/beanbocchi/courier/pkg/response"
)

const baseURL = "http://localhost:8080/api/v1"

func main() {
	// Run the bench server in-process so the demo is self-contained.
	e, err := testserver.New()
	if err != nil {
		fmt.Printf("create server: %v\n", err)
		os.Exit(1)
	}
	go e.Start(":8080")
	time.Sleep(200 * time.Millisecond)

	c := client.New()

	fmt.Println("=== GET Example ===")
	result, err := c.SendGet(baseURL+"/status", client.Params{"demo": true}).Result()
	if err != nil {
		fmt.Printf("GET error: %v\n", err)
	} else {
		fmt.Printf("GET result: %v\n", result)
	}

	fmt.Println("\n=== POST Example ===")
	result, err = c.SendPost(baseURL+"/form", client.Params{"name": "courier", "n": 7}).Result()
	if err != nil {
		fmt.Printf("POST error: %v\n", err)
	} else {
		fmt.Printf("POST result: %v\n", result)
	}

	fmt.Println("\n=== Upload Example ===")
	path, err := writeSampleFile()
	if err != nil {
		fmt.Printf("sample file: %v\n", err)
		os.Exit(1)
	}
	defer os.Remove(path)

	call := c.UploadImage(baseURL+"/upload", path, client.Params{"caption": "demo upload"})
	call.Notify(client.Callbacks{
		OnProgress: func(fraction float64) {
			fmt.Printf("progress: %3.0f%%\n", fraction*100)
		},
		OnSuccess: func(result response.Object) {
			fmt.Printf("upload result: %v\n", result)
			fmt.Printf("client checksum: %s\n", call.Checksum())
		},
		OnError: func(err error) {
			fmt.Printf("upload error: %v\n", err)
		},
	})
	<-call.Done()
}

func writeSampleFile() (string, error) {
	f, err := os.CreateTemp("", "courier-demo-*.png")
	if err != nil {
		return "", err
	}
	defer f.Close()

	for i := 0; i < 4096; i++ {
		if _, err := f.WriteString("courier demo payload "); err != nil {
			return "", err
		}
	}
	return f.Name(), nil
}
