package main

import (
	"context"
	"flag"

	"github.com/osmroute/roadgraph/pkg/logger"
	"github.com/osmroute/roadgraph/pkg/osmdownload"
)

var (
	west      = flag.Float64("west", 0, "bounding box west longitude")
	south     = flag.Float64("south", 0, "bounding box south latitude")
	east      = flag.Float64("east", 0, "bounding box east longitude")
	north     = flag.Float64("north", 0, "bounding box north latitude")
	split     = flag.Int("split", 1, "split the bounding box into an n x n grid of smaller requests")
	outputDir = flag.String("output_dir", "./data", "directory for the downloaded .osm files")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	downloader := osmdownload.NewDownloader(logger)
	bbox := osmdownload.NewBBox(*west, *south, *east, *north)

	files, err := downloader.DownloadBBoxes(context.Background(), bbox.Split(*split), *outputDir)
	if err != nil {
		panic(err)
	}
	logger.Sugar().Infof("downloaded %d files to %s", len(files), *outputDir)
}
