package main

import (
	"context"
	"errors"
	"flag"
	"net/http"

	_ "lintang/penaltyroute/docs"
	"lintang/penaltyroute/pkg/engine/routingalgorithm"
	"lintang/penaltyroute/pkg/graph"
	"lintang/penaltyroute/pkg/kv"
	"lintang/penaltyroute/pkg/osmparser"
	"lintang/penaltyroute/pkg/server/rest"
	"lintang/penaltyroute/pkg/server/rest/service"
	"lintang/penaltyroute/pkg/snap"

	_ "net/http/pprof"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "depok.osm.pbf", "road network file (.osm.pbf, .graphml atau osmnx node-link .json)")
	dbDir      = flag.String("db", "penaltyrouteDB", "direktori pebble db buat cache road network")
	penalty    = flag.Float64("penalty", routingalgorithm.DefaultPenalty, "penalti (meter) tiap segmen yang lewat jalan yang dipenalti")
	roadName   = flag.String("road", routingalgorithm.DefaultPenalizedRoad, "nama jalan yang dipenalti (case-insensitive substring)")
	snapMode   = flag.String("snap", "rtree", "nearest node lookup: rtree atau h3")
	logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
)

//	@title			penaltyroute API
//	@version		1.0
//	@description	shortest path di road network openstreetmap dengan penalti untuk jalan tertentu (default Jalan Margonda).

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	setupLogger(*logLevel)

	if *penalty < 0 {
		logrus.Fatalf("penalty must be >= 0, got %v", *penalty)
	}
	if *roadName == "" {
		logrus.Fatal("penalized road name must not be empty")
	}
	if *snapMode != "rtree" && *snapMode != "h3" {
		logrus.Fatalf("unknown snap mode %q (want rtree or h3)", *snapMode)
	}

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		logrus.Fatal(err)
	}
	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	ctx := context.Background()
	g, err := loadRoadNetwork(ctx, kvDB, *mapFile)
	if err != nil {
		logrus.Fatal(err)
	}

	var snapper service.Snapper
	if *snapMode == "h3" {
		snapper = snap.NewKVSnapper(kvDB)
	} else {
		snapper = snap.NewNodeIndex(g.Nodes())
	}

	pathFinder := routingalgorithm.NewPenalizedPathFinder(g,
		routingalgorithm.WithPenalty(*penalty),
		routingalgorithm.WithPenalizedRoad(*roadName),
	)

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	navigatorSvc := service.NewNavigationService(g, pathFinder, snapper, service.DefaultPlaces)
	rest.NavigatorRouter(r, navigatorSvc, m)

	logrus.WithFields(logrus.Fields{
		"addr":    *listenAddr,
		"nodes":   g.NumNodes(),
		"edges":   g.NumEdges(),
		"road":    *roadName,
		"penalty": *penalty,
		"snap":    *snapMode,
	}).Info("server started")
	logrus.Fatal(http.ListenAndServe(*listenAddr, r))
}

// loadRoadNetwork ambil road network dari pebble, kalau belum ada load dari file lalu simpan ke pebble.
func loadRoadNetwork(ctx context.Context, kvDB *kv.KVDB, path string) (*graph.MultiDiGraph, error) {
	g, err := kvDB.LoadGraph()
	if err == nil {
		logrus.WithFields(logrus.Fields{"nodes": g.NumNodes(), "edges": g.NumEdges()}).Info("road network loaded from pebble")
		return g, nil
	}
	if !errors.Is(err, kv.ErrGraphNotFound) {
		return nil, err
	}

	logrus.WithField("file", path).Info("road network not cached yet, loading from file...")
	g, err = osmparser.LoadRoadNetwork(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := kvDB.SaveGraph(g); err != nil {
		return nil, err
	}
	if err := kvDB.CreateNodeKV(g.Nodes()); err != nil {
		return nil, err
	}
	return g, nil
}

func setupLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
