package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

// ErrUploadRejected is returned when the upstream refuses the file.
var ErrUploadRejected = errors.New("upload rejected")

type UploadClient struct {
	api *Client
}

func NewUploadClient(api *Client) *UploadClient {
	return &UploadClient{api: api}
}

// Upload posts the image bytes as multipart {file, itemName} and returns the
// URL the upstream assigned. The response may key the URL as url, imageUrl,
// or link depending on the deployment, so all three are accepted.
func (u *UploadClient) Upload(ctx context.Context, data []byte, itemName string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", itemName+".png")
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.WriteField("itemName", itemName); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.api.base()+"/api/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := u.api.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrUploadRejected, res.StatusCode)
	}

	var out struct {
		URL      string `json:"url"`
		ImageURL string `json:"imageUrl"`
		Link     string `json:"link"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	switch {
	case out.URL != "":
		return out.URL, nil
	case out.ImageURL != "":
		return out.ImageURL, nil
	case out.Link != "":
		return out.Link, nil
	}
	return "", fmt.Errorf("%w: no url in response", ErrUploadRejected)
}
