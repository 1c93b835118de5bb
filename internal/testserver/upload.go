package testserver

import (
	"fmt"
	"net/http"

	"github.com/guregu/null/v6"
	"github.com/labstack/echo/v4"

	blake3util "github.com/beanbocchi/courier/internal/utils/blake3"
	"github.com/beanbocchi/courier/internal/utils/ioutil"
)

type uploadRequest struct {
	Caption null.String `validate:"omitnil,max=200"`
}

// Upload accepts a multipart body with a "file" part plus optional form
// fields, and answers with the received size and checksum so clients can
// verify their stream end to end.
func (h *Handler) Upload(c echo.Context) error {
	req := uploadRequest{
		Caption: null.NewString(c.FormValue("caption"), c.FormValue("caption") != ""),
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	defer src.Close()

	counter := ioutil.NewSizeReader(src)
	checksum, err := blake3util.Compute(counter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"key":      fmt.Sprintf("uploads/%s", file.Filename),
		"size":     counter.Size,
		"checksum": checksum,
		"caption":  req.Caption,
	})
}

// Form echoes every form field back as a JSON object.
func (h *Handler) Form(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	received := map[string]any{}
	for key, vs := range values {
		if len(vs) > 0 {
			received[key] = vs[0]
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"received": received})
}
