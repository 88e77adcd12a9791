package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"lintang/penaltyroute/pkg/kv"
	"lintang/penaltyroute/pkg/osmparser"

	"github.com/cockroachdb/pebble"
	"github.com/sirupsen/logrus"
)

var (
	mapFile  = flag.String("f", "depok.osm.pbf", "road network file (.osm.pbf, .graphml atau osmnx node-link .json)")
	mapURL   = flag.String("url", "", "url extract openstreetmap, didownload ke -f kalau file belum ada")
	dbDir    = flag.String("db", "penaltyrouteDB", "direktori pebble db buat cache road network")
	logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
)

func main() {
	flag.Parse()
	lvl, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := os.Stat(*mapFile); os.IsNotExist(err) {
		if *mapURL == "" {
			logrus.Fatalf("%s not found and no -url given", *mapFile)
		}
		if err := osmparser.DownloadExtract(ctx, *mapURL, *mapFile); err != nil {
			logrus.Fatal(err)
		}
	}

	g, err := osmparser.LoadRoadNetwork(ctx, *mapFile)
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		logrus.Fatal(err)
	}
	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	if err := kvDB.SaveGraph(g); err != nil {
		logrus.Fatal(err)
	}
	if err := kvDB.CreateNodeKV(g.Nodes()); err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"nodes": g.NumNodes(),
		"edges": g.NumEdges(),
		"db":    *dbDir,
	}).Info("preprocessing done")
}
