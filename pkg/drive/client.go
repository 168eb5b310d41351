// Package drive wraps the Google OAuth2 code flow and the Drive files API.
package drive

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	userAgent = "drive-access"

	listQuery    = "trashed = false and visibility = 'limited'"
	listSpaces   = "drive"
	listFields   = "nextPageToken, files(id, name, createdTime, size)"
	listPageSize = 50
)

// Client is a Google Drive API client.
type Client struct {
	service *drivev3.Service
	logger  zerolog.Logger
}

// NewClient creates a Drive client that sends requests through httpClient.
// httpClient is expected to carry the OAuth2 credentials. Extra options, such as
// option.WithEndpoint, are applied after the defaults.
func NewClient(ctx context.Context, httpClient *http.Client, logger zerolog.Logger, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{
		option.WithHTTPClient(httpClient),
		option.WithUserAgent(userAgent),
	}, opts...)

	service, err := drivev3.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}

	return &Client{
		service: service,
		logger:  logger,
	}, nil
}

// ListFiles returns the first page (up to 50) of non-trashed, limited-visibility
// files in the user's drive space. Shared drives are excluded.
func (c *Client) ListFiles(ctx context.Context) ([]File, error) {
	c.logger.Debug().Str("query", listQuery).Int("page_size", listPageSize).Msg("listing Drive files")

	resp, err := c.service.Files.List().
		Q(listQuery).
		Spaces(listSpaces).
		IncludeItemsFromAllDrives(false).
		PageSize(listPageSize).
		Fields(listFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	files := make([]File, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, File{
			ID:          f.Id,
			Name:        f.Name,
			CreatedTime: f.CreatedTime,
			Size:        f.Size,
		})
	}

	c.logger.Debug().Int("files", len(files)).Bool("has_more", resp.NextPageToken != "").Msg("Drive listing complete")
	return files, nil
}
