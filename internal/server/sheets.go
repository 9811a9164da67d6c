package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/oceancruise/internal/sheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleSheetOrder accepts a multipart upload ("file", optional "sheet",
// "orientation" and "name" fields) and answers with the ordered workbook.
func (s *Server) handleSheetOrder(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		errBadRequest(c, "missing file upload")
		return
	}
	f, err := fh.Open()
	if err != nil {
		errBadRequest(c, "cannot read upload: "+err.Error())
		return
	}
	defer f.Close()

	imp, err := sheet.Read(f, c.PostForm("sheet"))
	if err != nil {
		errBadRequest(c, err.Error())
		return
	}
	if name := c.PostForm("name"); name != "" {
		imp.Track.Name = name
	}
	if !s.checkStations(c, imp.Track.Stations) {
		return
	}

	e, err := s.engineFor(c.PostForm("orientation"))
	if err != nil {
		errBadRequest(c, err.Error())
		return
	}
	sorted, res, err := s.sortTrack(e, imp.Track)
	if err != nil {
		errInternal(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := sheet.Write(&buf, sorted, sheet.DefaultSheet); err != nil {
		errInternal(c, err.Error())
		return
	}

	skipped := make([]string, len(imp.Skipped))
	for i, row := range imp.Skipped {
		skipped[i] = strconv.Itoa(row)
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-ordered.xlsx"`, safeName(sorted.Name)))
	c.Header("X-Orientation", res.Orientation.String())
	c.Header("X-Degenerate", strconv.FormatBool(res.Degenerate))
	if len(skipped) > 0 {
		c.Header("X-Skipped-Rows", strings.Join(skipped, ","))
	}
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func safeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" {
		return "track"
	}

	return name
}
