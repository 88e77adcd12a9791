package kv

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"lintang/penaltyroute/pkg/concurrent"
	"lintang/penaltyroute/pkg/datastructure"
	"lintang/penaltyroute/pkg/graph"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/uber/h3-go/v4"
)

const (
	graphKey      = "graph:snapshot"
	h3Resolution  = 9
	searchRadius  = 0.7 // km
	maxRingLevels = 10
)

var (
	ErrGraphNotFound = errors.New("road network snapshot not found")
	ErrNoNearbyNode  = errors.New("tidak ada node di sekitar lokasi")
)

type KVDB struct {
	db          *pebble.DB
	progressOut io.Writer
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db: db, progressOut: ansi.NewAnsiStdout()}
}

// OpenKVDB buka pebble db di dir. opts boleh nil.
func OpenKVDB(dir string, opts *pebble.Options) (*KVDB, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble db %s: %w", dir, err)
	}
	return NewKVDB(db), nil
}

// SetProgressOutput ganti writer progressbar (default ansi stdout).
func (k *KVDB) SetProgressOutput(w io.Writer) {
	k.progressOut = w
}

func (k *KVDB) newBar(max int, desc string) *progressbar.ProgressBar {
	out := k.progressOut
	if out == nil {
		out = os.Stdout
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// SaveGraph simpan snapshot road network (binary + zstd).
func (k *KVDB) SaveGraph(g *graph.MultiDiGraph) error {
	val, err := encodeGraph(g)
	if err != nil {
		return fmt.Errorf("encode graph snapshot: %w", err)
	}
	if err := k.db.Set([]byte(graphKey), val, pebble.Sync); err != nil {
		return fmt.Errorf("save graph snapshot: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"nodes": g.NumNodes(),
		"edges": g.NumEdges(),
		"bytes": len(val),
	}).Info("road network snapshot saved")
	return nil
}

// LoadGraph load snapshot road network. ErrGraphNotFound kalau belum pernah disimpan.
func (k *KVDB) LoadGraph() (*graph.MultiDiGraph, error) {
	val, closer, err := k.db.Get([]byte(graphKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrGraphNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get graph snapshot: %w", err)
	}
	defer closer.Close()

	g, err := decodeGraph(val)
	if err != nil {
		return nil, fmt.Errorf("decode graph snapshot: %w", err)
	}
	return g, nil
}

// CreateNodeKV index node per h3 cell (res 9) buat nearest node lookup.
func (k *KVDB) CreateNodeKV(nodes []datastructure.Node) error {
	bar := k.newBar(len(nodes), "[cyan][1/2][reset] Membuat h3 index untuk node road network...")
	kv := make(map[string][]concurrent.SmallNode)
	for _, n := range nodes {
		cell := h3.LatLngToCell(h3.NewLatLng(n.Lat, n.Lon), h3Resolution)
		kv[cell.String()] = append(kv[cell.String()], concurrent.SmallNode{
			ID:  int64(n.ID),
			Lat: n.Lat,
			Lon: n.Lon,
		})
		bar.Add(1)
	}

	fmt.Fprintln(k.progressOut, "")
	bar = k.newBar(len(kv), "[cyan][2/2][reset] saving h3 indexed node to pebble db...")

	workers := concurrent.NewWorkerPool[concurrent.SaveNodeJobItem, error](4, len(kv))
	for keyStr, valArr := range kv {
		workers.AddJob(concurrent.SaveNodeJobItem{KeyStr: keyStr, ValArr: valArr})
	}
	workers.Close()

	workers.Start(k.SaveNodes)
	workers.Wait()

	var errs []error
	for err := range workers.CollectResults() {
		bar.Add(1)
		if err != nil {
			errs = append(errs, err)
		}
	}
	fmt.Fprintln(k.progressOut, "")
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logrus.WithFields(logrus.Fields{
		"nodes": len(nodes),
		"cells": len(kv),
	}).Info("h3 node index saved")
	return nil
}

// SaveNodes simpan satu h3 cell bucket.
func (k *KVDB) SaveNodes(item concurrent.SaveNodeJobItem) error {
	val, err := CompressNodes(item.ValArr)
	if err != nil {
		return fmt.Errorf("compress cell %s: %w", item.KeyStr, err)
	}
	if err := k.db.Set([]byte(item.KeyStr), val, pebble.Sync); err != nil {
		return fmt.Errorf("save cell %s: %w", item.KeyStr, err)
	}
	return nil
}

func (k *KVDB) getCellNodes(cell h3.Cell) ([]concurrent.SmallNode, error) {
	val, closer, err := k.db.Get([]byte(cell.String()))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return LoadNodes(val)
}

// GetNearestNodesFromPointCoord buat road snapping. node-node di h3 cell titik (lat, lon) & cell tetangga dalam radius 0.7 km.
func (k *KVDB) GetNearestNodesFromPointCoord(lat, lon float64) ([]datastructure.Node, error) {
	nodes := []concurrent.SmallNode{}

	cell := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)
	for _, currCell := range kRingIndexesArea(lat, lon, searchRadius) {
		cellNodes, err := k.getCellNodes(currCell)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, cellNodes...)
	}

	// kalau dalam radius 0.7 km gak ada node (misal di hutan), cari dari neighbor h3 cell yang lebih jauh
	for lev := 1; lev <= maxRingLevels && len(nodes) == 0; lev++ {
		for _, currCell := range h3.GridDisk(cell, lev) {
			cellNodes, err := k.getCellNodes(currCell)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, cellNodes...)
		}
	}

	if len(nodes) == 0 {
		return nil, ErrNoNearbyNode
	}

	result := make([]datastructure.Node, len(nodes))
	for i, n := range nodes {
		result[i] = datastructure.Node{ID: datastructure.NodeID(n.ID), Lat: n.Lat, Lon: n.Lon}
	}
	return result, nil
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    search cell neighbor dari cell dari lat,lon  yang radius nya = searchRadiusKm
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea

	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
