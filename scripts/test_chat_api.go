package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout, chat streams
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 ConeVibes Chat API Smoke Test\n")

	// 1. Create a session
	color.Yellow("\n[1] Create session")
	resp, body, err := sendRequest("POST", "/chat/v1/session", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var sessionResp struct {
		Data struct {
			Id string `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(body, &sessionResp)
	prettyPrint(sessionResp)

	// 2. Apply selections, input should synthesize
	color.Yellow("\n[2] Select weather=sunny then activity=running")
	for _, sel := range []map[string]string{
		{"type": "weather", "value": "sunny"},
		{"type": "activity", "value": "running"},
	} {
		resp, body, err = sendRequest("POST", "/chat/v1/session/"+sessionResp.Data.Id+"/selection", sel)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		var selResp map[string]interface{}
		json.Unmarshal(body, &selResp)
		prettyPrint(selResp)
	}

	// 3. Stream a recommendation
	color.Yellow("\n[3] Stream recommendation")
	chatReq := map[string]interface{}{
		"messages": []map[string]string{
			{"role": "user", "content": "Weather: sunny Activity: running"},
		},
	}
	jsonBody, _ := json.Marshal(chatReq)
	req, err := http.NewRequest("POST", baseURL+"/chat/v1", bytes.NewBuffer(jsonBody))
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	streamResp, err := (&http.Client{}).Do(req)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	defer streamResp.Body.Close()
	color.Green("Status: %s", streamResp.Status)

	scanner := bufio.NewScanner(streamResp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			color.Blue("%s", line)
		case strings.HasPrefix(line, "data: "):
			fmt.Println(line)
		}
	}

	color.Cyan("\n✅ Smoke test complete")
}
