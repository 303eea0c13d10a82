package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Vocably service base URL")
	videoPath := flag.String("video", "", "path to the presentation video to analyze")
	pollEvery := flag.Duration("poll", 2*time.Second, "poll interval")
	timeout := flag.Duration("timeout", 10*time.Minute, "how long to wait for the analysis")
	flag.Parse()

	if *videoPath == "" {
		log.Fatal("usage: analyzeclient -video <file> [-url http://localhost:8080]")
	}

	id, err := upload(*baseURL, *videoPath)
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}
	log.Printf("Analysis %d accepted, polling...", id)

	deadline := time.Now().Add(*timeout)
	for time.Now().Before(deadline) {
		time.Sleep(*pollEvery)

		rec, err := fetch(*baseURL, id)
		if err != nil {
			log.Fatalf("fetch failed: %v", err)
		}

		switch rec.Status {
		case "completed":
			out, _ := json.MarshalIndent(rec.Report, "", "  ")
			fmt.Println(string(out))
			return
		case "failed":
			log.Fatalf("analysis failed at stage %q: %s", rec.Stage, rec.Error)
		default:
			log.Printf("status: %s", rec.Status)
		}
	}
	log.Fatalf("timed out after %s waiting for analysis %d", *timeout, id)
}

type record struct {
	ID     int64           `json:"id"`
	Status string          `json:"status"`
	Stage  string          `json:"stage"`
	Error  string          `json:"error"`
	Report json.RawMessage `json:"report"`
}

func upload(baseURL, videoPath string) (int64, error) {
	f, err := os.Open(videoPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("video", filepath.Base(videoPath))
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return 0, err
	}
	if err := mw.Close(); err != nil {
		return 0, err
	}

	resp, err := http.Post(baseURL+"/v1/analyses", mw.FormDataContentType(), &buf)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var accepted struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return 0, err
	}
	return accepted.ID, nil
}

func fetch(baseURL string, id int64) (*record, error) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/analyses/%d", baseURL, id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var rec record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
