package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/wbcassist/wbcmatch/internal/ingestion"
)

func main() {
	outDir := flag.String("out", "data", "Directory to write races.json and units.json into")
	racesURL := flag.String("races", ingestion.RacesURL, "URL of races.json")
	unitsURL := flag.String("units", ingestion.UnitsURL, "URL of units.json")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	client := &http.Client{Timeout: 15 * time.Second}

	races, err := fetch(ctx, client, *racesURL)
	if err != nil {
		log.Fatalf("fetch races: %v", err)
	}
	units, err := fetch(ctx, client, *unitsURL)
	if err != nil {
		log.Fatalf("fetch units: %v", err)
	}

	// Refuse to overwrite a good dataset with one the server would reject.
	parsed, err := ingestion.Parse(bytes.NewReader(races), bytes.NewReader(units))
	if err != nil {
		log.Fatalf("downloaded dataset is invalid: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *outDir, err)
	}
	for name, body := range map[string][]byte{ingestion.RacesFile: races, ingestion.UnitsFile: units} {
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
	}

	fmt.Printf("Done! %d units written to %s\n", len(parsed), *outDir)
}

func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
