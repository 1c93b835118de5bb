package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/beanbocchi/courier/internal/testserver"
	"github.com/beanbocchi/courier/pkg/client"
	"github.com/beanbocchi/courier/pkg/response"
)

const baseURL = "http://localhost:8081/api/v1"

// Dispatches many independent requests through one shared client; each call
// resolves its own outcome with no coordination between them.
func main() {
	e, err := testserver.New()
	if err != nil {
		fmt.Printf("create server: %v\n", err)
		os.Exit(1)
	}
	go e.Start(":8081")
	time.Sleep(200 * time.Millisecond)

	c := client.New()

	const n = 50
	var wg sync.WaitGroup
	started := time.Now()

	for i := 0; i < n; i++ {
		wg.Add(1)
		i := i
		call := c.SendGet(baseURL+"/status", client.Params{"i": i})
		call.Notify(client.Callbacks{
			OnSuccess: func(response.Object) {
				fmt.Printf("request %d done\n", i)
				wg.Done()
			},
			OnError: func(err error) {
				fmt.Printf("request %d failed: %v\n", i, err)
				wg.Done()
			},
		})
	}

	wg.Wait()
	fmt.Printf("%d requests resolved in %v\n", n, time.Since(started))
}
