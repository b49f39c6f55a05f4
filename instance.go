package tsp_evolve

import (
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Instance is a parsed travel-cost dataset: a named city set with its
// full symmetric cost matrix. Files follow the TSPLIB XML layout, one
// <vertex> per city listing an <edge cost="..">j</edge> for every other
// city.
type Instance struct {
	Name        string
	Source      string
	Description string
	Matrix      [][]float64
}

type xmlInstance struct {
	XMLName     xml.Name  `xml:"travellingSalesmanProblemInstance"`
	Name        string    `xml:"name"`
	Source      string    `xml:"source"`
	Description string    `xml:"description"`
	Graph       xmlGraph  `xml:"graph"`
}

type xmlGraph struct {
	Vertices []xmlVertex `xml:"vertex"`
}

type xmlVertex struct {
	Edges []xmlEdge `xml:"edge"`
}

type xmlEdge struct {
	Cost float64 `xml:"cost,attr"`
	City string  `xml:",chardata"`
}

// LoadInstance reads and validates an XML instance file.
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance: %w", err)
	}
	return ParseInstance(data)
}

// ParseInstance decodes an XML instance document and validates the
// resulting matrix: square, symmetric, zero diagonal, non-negative
// finite costs. Anything else is an input-data error.
func ParseInstance(data []byte) (*Instance, error) {
	var doc xmlInstance
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputData, err)
	}

	n := len(doc.Graph.Vertices)
	if n < 2 {
		return nil, fmt.Errorf("%w: instance %q has %d cities, need at least 2", ErrInputData, doc.Name, n)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i, vert := range doc.Graph.Vertices {
		if len(vert.Edges) != n-1 {
			return nil, fmt.Errorf("%w: city %d has %d edges, want %d", ErrInputData, i, len(vert.Edges), n-1)
		}
		for _, edge := range vert.Edges {
			j, err := strconv.Atoi(strings.TrimSpace(edge.City))
			if err != nil {
				return nil, fmt.Errorf("%w: city %d has non-numeric edge target %q", ErrInputData, i, edge.City)
			}
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%w: city %d has edge to %d, out of range [0,%d)", ErrInputData, i, j, n)
			}
			if j == i {
				return nil, fmt.Errorf("%w: city %d has a self edge", ErrInputData, i)
			}
			if edge.Cost < 0 || math.IsNaN(edge.Cost) || math.IsInf(edge.Cost, 0) {
				return nil, fmt.Errorf("%w: edge %d->%d has cost %v", ErrInputData, i, j, edge.Cost)
			}
			matrix[i][j] = edge.Cost
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if matrix[i][j] != matrix[j][i] {
				return nil, fmt.Errorf("%w: asymmetric costs %d<->%d (%v vs %v)", ErrInputData, i, j, matrix[i][j], matrix[j][i])
			}
		}
	}

	return &Instance{
		Name:        doc.Name,
		Source:      doc.Source,
		Description: doc.Description,
		Matrix:      matrix,
	}, nil
}

// Size returns the number of cities.
func (in *Instance) Size() int {
	return len(in.Matrix)
}

// CostModel wraps the instance matrix for the engines.
func (in *Instance) CostModel() (*CostModel, error) {
	return NewCostModel(in.Matrix)
}
