package osmdownload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const overpassURL = "http://overpass-api.de/api/interpreter"

// BBox is (west, south, east, north) in degrees, the overpass convention.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

func NewBBox(west, south, east, north float64) BBox {
	return BBox{West: west, South: south, East: east, North: north}
}

func (b BBox) name() string {
	return fmt.Sprintf("bbox_%.3f_%.3f_%.3f_%.3f", b.West, b.South, b.East, b.North)
}

// Split divides the box into an n x n grid of equal sub-boxes. large
// extracts go through the grid so each overpass request stays small enough
// to finish within the server's time budget.
func (b BBox) Split(n int) []BBox {
	if n <= 1 {
		return []BBox{b}
	}
	dLon := (b.East - b.West) / float64(n)
	dLat := (b.North - b.South) / float64(n)

	boxes := make([]BBox, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			west := b.West + float64(j)*dLon
			south := b.South + float64(i)*dLat
			boxes = append(boxes, BBox{
				West:  west,
				South: south,
				East:  west + dLon,
				North: south + dLat,
			})
		}
	}
	return boxes
}

// Downloader fetches raw OSM XML for bounding boxes from the Overpass API.
// overpass rate-limits aggressively, so requests go through a shared
// limiter regardless of how many boxes are fetched concurrently.
type Downloader struct {
	client  *http.Client
	limiter *rate.Limiter
	apiURL  string
	log     *zap.Logger
}

func NewDownloader(log *zap.Logger) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: 10 * time.Minute,
		},
		// one request every 5 seconds, no burst
		limiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
		apiURL:  overpassURL,
		log:     log,
	}
}

func (d *Downloader) query(b BBox) string {
	return fmt.Sprintf(`
	[out:xml];
	(
	  way(%[1]f,%[2]f,%[3]f,%[4]f);
	  node(%[1]f,%[2]f,%[3]f,%[4]f);
	  relation(%[1]f,%[2]f,%[3]f,%[4]f);
	);
	(._;>;);
	out meta;
	`, b.South, b.West, b.North, b.East)
}

// DownloadBBox fetches one bounding box and writes the OSM XML into
// outputDir. returns the written file path.
func (d *Downloader) DownloadBBox(ctx context.Context, b BBox, outputDir string) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}

	d.log.Sugar().Infof("downloading %s from overpass api...", b.name())

	form := url.Values{}
	form.Set("data", d.query(b))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.apiURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("overpass api request failed: %s", resp.Status)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	outFile := filepath.Join(outputDir, b.name()+".osm")
	f, err := os.Create(outFile)
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, resp.Body)
	if err != nil {
		return "", err
	}

	d.log.Sugar().Infof("downloaded %s (%d bytes)", outFile, written)
	return outFile, nil
}

// DownloadBBoxes fetches several bounding boxes concurrently. the shared
// limiter keeps the overpass request rate bounded.
func (d *Downloader) DownloadBBoxes(ctx context.Context, boxes []BBox, outputDir string) ([]string, error) {
	files := make([]string, len(boxes))

	g, ctx := errgroup.WithContext(ctx)
	for i, b := range boxes {
		g.Go(func() error {
			file, err := d.DownloadBBox(ctx, b, outputDir)
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}
