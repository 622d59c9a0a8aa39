package main

import (
	"github.com/osmroute/roadgraph/pkg/dataloader"
	"github.com/osmroute/roadgraph/pkg/datastructure"
	"github.com/osmroute/roadgraph/pkg/graphbuilder"
	"github.com/osmroute/roadgraph/pkg/logger"
	"github.com/osmroute/roadgraph/pkg/osmparser"
	"github.com/osmroute/roadgraph/pkg/spatialindex"
	"github.com/osmroute/roadgraph/pkg/stats"
	"github.com/osmroute/roadgraph/pkg/util"
)

func main() {
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	cfg, err := util.ReadConfig()
	if err != nil {
		panic(err)
	}

	var ways []datastructure.Way
	switch cfg.InputFormat {
	case "pbf":
		parser := osmparser.NewOsmParser()
		ways, err = parser.Parse(cfg.MapFile, logger)
	case "json":
		loader := dataloader.NewLoader(cfg.HighwaySpeeds, logger)
		ways, err = loader.Load(cfg.NodesFile, cfg.EdgesFile)
	}
	if err != nil {
		panic(err)
	}

	stats.Analyze(ways).Log(logger)

	builder := graphbuilder.NewBuilder(cfg.NumWorkers, logger)
	graph, err := builder.Build(ways)
	if err != nil {
		panic(err)
	}
	stats.LogGraph(graph, logger)

	// sanity-check the built graph can serve snapping queries
	index := spatialindex.NewRtree()
	index.Build(graph, logger)

	if err := graph.WriteGraph(cfg.OutputGraph); err != nil {
		panic(err)
	}
	if err := graph.ExportAdjacencyJSON(cfg.OutputAdjacency); err != nil {
		panic(err)
	}

	logger.Sugar().Infof("graph written to %s, adjacency to %s", cfg.OutputGraph, cfg.OutputAdjacency)
}
