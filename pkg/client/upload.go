package client

import (
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/beanbocchi/courier/internal/model"
	"github.com/beanbocchi/courier/internal/utils/progressr"
	"github.com/beanbocchi/courier/pkg/response"
)

// UploadImage dispatches a multipart POST with the file at filePath as the
// "file" part and params as ordinary form fields. Progress fractions are
// published on the Call while the file streams; an unreadable file fails the
// Call before dispatch. The file's BLAKE3 hash is computed during the stream
// and exposed via Call.Checksum.
func (c *Client) UploadImage(rawURL, filePath string, params Params) *Call {
	call := newCall()

	target, err := parseURL(rawURL)
	if err != nil {
		call.finish(nil, err)
		return call
	}

	file, err := os.Open(filePath)
	if err != nil {
		call.finish(nil, model.ErrRequestEncoding.Fmt(err.Error()))
		return call
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		call.finish(nil, model.ErrRequestEncoding.Fmt(err.Error()))
		return call
	}

	c.logger.Debug("dispatching upload", "id", call.id, "url", target.String(), "file", filePath, "size", info.Size())

	go c.upload(call, target, file, info.Size(), filepath.Base(filePath), params)

	return call
}

func (c *Client) upload(call *Call, target *url.URL, file *os.File, size int64, fileName string, params Params) {
	defer file.Close()

	// Stream multipart to avoid buffering whole file in memory; hash and
	// count progress on the raw file bytes, not the multipart framing.
	hasher := blake3.New()
	progressReader := progressr.NewReader(io.TeeReader(file, hasher), size)
	progressReader.OnTick(call.publish)

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	writeErr := make(chan error, 1)

	go func() {
		defer close(writeErr)
		defer pw.Close()

		for key, value := range params {
			if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
				pw.CloseWithError(err)
				writeErr <- fmt.Errorf("write field %s: %w", key, err)
				return
			}
		}

		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			pw.CloseWithError(err)
			writeErr <- fmt.Errorf("create form file: %w", err)
			return
		}

		if _, err := io.Copy(part, progressReader); err != nil {
			pw.CloseWithError(err)
			writeErr <- fmt.Errorf("copy file: %w", err)
			return
		}

		if err := writer.Close(); err != nil {
			pw.CloseWithError(err)
			writeErr <- fmt.Errorf("close writer: %w", err)
			return
		}
	}()

	req, err := http.NewRequest(http.MethodPost, target.String(), pr)
	if err != nil {
		<-writeErr
		call.finish(nil, fmt.Errorf("create request: %w", err))
		return
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Ensure writer goroutine finishes.
		<-writeErr
		call.finish(nil, fmt.Errorf("send request: %w", err))
		return
	}
	defer resp.Body.Close()

	if wErr := <-writeErr; wErr != nil {
		call.finish(nil, model.ErrRequestEncoding.Fmt(wErr.Error()))
		return
	}

	call.checksum = hex.EncodeToString(hasher.Sum(nil))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		call.finish(nil, fmt.Errorf("read response: %w", err))
		return
	}

	if resp.StatusCode >= http.StatusBadRequest {
		call.finish(nil, fmt.Errorf("request failed with status code: %d", resp.StatusCode))
		return
	}

	result, err := response.Decode(raw)
	if err != nil {
		c.logger.Debug("upload failed", "id", call.id, "error", err)
		call.finish(nil, err)
		return
	}

	c.logger.Debug("upload completed", "id", call.id, "status", resp.StatusCode, "checksum", call.checksum)
	call.finish(result, nil)
}
