//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const serverUrl = "https://playful-patterns.com"

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string,
	files map[string][]byte) (string, error) {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	// Create a POST request with the multipart form data.
	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	// Perform the request.
	client := &http.Client{}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http request to %s failed: %d", url,
			response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	return string(data), err
}

func UploadPlaythroughHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID, data []byte) error {
	_, err := makeHttpRequest(serverUrl+"/submit-playthrough-suika1.php",
		map[string]string{
			"user":               user,
			"release_version":    strconv.FormatInt(releaseVersion, 10),
			"simulation_version": strconv.FormatInt(simulationVersion, 10),
			"input_version":      strconv.FormatInt(inputVersion, 10),
			"id":                 id.String()},
		map[string][]byte{"playthrough": data})
	return err
}

func SetUserDataHttp(user string, data string) error {
	_, err := makeHttpRequest(serverUrl+"/set-user-data-suika1.php",
		map[string]string{"user": user, "data": data},
		map[string][]byte{})
	return err
}

// GetUserDataHttp returns what SetUserDataHttp last stored for user.
func GetUserDataHttp(user string) (string, error) {
	return makeHttpRequest(serverUrl+"/get-user-data-suika1.php",
		map[string]string{"user": user},
		map[string][]byte{})
}
