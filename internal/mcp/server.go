// Package mcp exposes the hike log to MCP clients over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mhike/mhike/internal/database"
	"github.com/mhike/mhike/internal/hike"
	"github.com/mhike/mhike/internal/lifecycle"
	"github.com/mhike/mhike/internal/usecase"
)

// Server wraps the MCP server with the hike log's tools.
type Server struct {
	server *mcp.Server
	dbCtx  *database.Context
}

// NewServer opens the configured database and registers every tool.
func NewServer() (*Server, error) {
	dbCtx, err := database.CreateDatabase("")
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	return newServer(dbCtx), nil
}

func newServer(dbCtx *database.Context) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "mhike",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		server: mcpServer,
		dbCtx:  dbCtx,
	}
	s.registerTools()
	return s
}

// Run starts the MCP server with stdio transport
func (s *Server) Run(ctx context.Context) error {
	defer database.CloseDatabase(s.dbCtx)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_add",
		Description: "Record a new hike",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_update",
		Description: "Change fields of an existing hike; omitted fields keep their value",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_get",
		Description: "Get a hike by id with its observation count",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_list",
		Description: "List all hikes, newest date first",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_search",
		Description: "Search hikes by name, location, length range and date range",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hike_delete",
		Description: "Delete a hike and all of its observations",
	}, s.handleDelete)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "observation_add",
		Description: "Record an observation during a hike",
	}, s.handleObservationAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "observation_list",
		Description: "List a hike's observations, most recent first",
	}, s.handleObservationList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "observation_delete",
		Description: "Delete a single observation",
	}, s.handleObservationDelete)
}

// Input/Output types for each tool

type AddInput struct {
	Name              string  `json:"name" jsonschema:"Name of the hike"`
	Location          string  `json:"location" jsonschema:"Where the hike took place"`
	Date              string  `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD (today if omitted)"`
	ParkingAvailable  string  `json:"parkingAvailable" jsonschema:"Parking availability: Yes, No or Limited"`
	Length            float64 `json:"length" jsonschema:"Length in kilometres"`
	Difficulty        string  `json:"difficulty" jsonschema:"Difficulty: Easy, Moderate, Hard or Expert"`
	Description       string  `json:"description,omitempty" jsonschema:"Free text description"`
	WeatherCondition  string  `json:"weatherCondition,omitempty" jsonschema:"Weather during the hike"`
	EstimatedDuration string  `json:"estimatedDuration,omitempty" jsonschema:"Estimated duration, for example 3 hours"`
}

type UpdateInput struct {
	ID                int64    `json:"id" jsonschema:"Id of the hike to change"`
	Name              *string  `json:"name,omitempty" jsonschema:"Name of the hike"`
	Location          *string  `json:"location,omitempty" jsonschema:"Where the hike took place"`
	Date              *string  `json:"date,omitempty" jsonschema:"Date as YYYY-MM-DD"`
	ParkingAvailable  *string  `json:"parkingAvailable,omitempty" jsonschema:"Parking availability: Yes, No or Limited"`
	Length            *float64 `json:"length,omitempty" jsonschema:"Length in kilometres"`
	Difficulty        *string  `json:"difficulty,omitempty" jsonschema:"Difficulty: Easy, Moderate, Hard or Expert"`
	Description       *string  `json:"description,omitempty" jsonschema:"Free text description"`
	WeatherCondition  *string  `json:"weatherCondition,omitempty" jsonschema:"Weather during the hike"`
	EstimatedDuration *string  `json:"estimatedDuration,omitempty" jsonschema:"Estimated duration"`
}

type HikeOutput struct {
	Message string    `json:"message"`
	Hike    hike.Hike `json:"hike"`
}

type GetInput struct {
	ID int64 `json:"id" jsonschema:"Id of the hike"`
}

type GetOutput struct {
	Hike             hike.Hike `json:"hike"`
	ObservationCount int64     `json:"observationCount"`
}

type ListInput struct{}

type ListOutput struct {
	Hikes []hike.Hike `json:"hikes"`
}

type SearchInput struct {
	Name      string   `json:"name,omitempty" jsonschema:"Fragment of the hike name, case-insensitive"`
	Location  string   `json:"location,omitempty" jsonschema:"Fragment of the location, case-insensitive"`
	MinLength *float64 `json:"minLength,omitempty" jsonschema:"Minimum length in kilometres, inclusive"`
	MaxLength *float64 `json:"maxLength,omitempty" jsonschema:"Maximum length in kilometres, inclusive"`
	StartDate string   `json:"startDate,omitempty" jsonschema:"Earliest date as YYYY-MM-DD, inclusive"`
	EndDate   string   `json:"endDate,omitempty" jsonschema:"Latest date as YYYY-MM-DD, inclusive"`
}

type DeleteInput struct {
	ID int64 `json:"id" jsonschema:"Id of the hike to delete"`
}

type DeleteOutput struct {
	Message string `json:"message"`
}

type ObservationAddInput struct {
	HikeID      int64  `json:"hikeId" jsonschema:"Id of the hike the observation belongs to"`
	Observation string `json:"observation" jsonschema:"What was observed"`
	Time        string `json:"time,omitempty" jsonschema:"Time as YYYY-MM-DD HH:mm:ss (now if omitted)"`
	Comments    string `json:"comments,omitempty" jsonschema:"Additional comments"`
}

type ObservationOutput struct {
	Message     string           `json:"message"`
	Observation hike.Observation `json:"observation"`
}

type ObservationListInput struct {
	HikeID int64 `json:"hikeId" jsonschema:"Id of the hike"`
}

type ObservationListOutput struct {
	Observations []hike.Observation `json:"observations"`
}

type ObservationDeleteInput struct {
	ID int64 `json:"id" jsonschema:"Id of the observation to delete"`
}

func formatLength(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatBound(value *float64) string {
	if value == nil {
		return ""
	}
	return formatLength(*value)
}

// describeSaveError keeps validation messages readable for the client.
func describeSaveError(action string, err error) error {
	var verrs hike.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return fmt.Errorf("failed to %s hike: %w", action, err)
}

// Tool handlers

func (s *Server) handleAdd(ctx context.Context, req *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, HikeOutput, error) {
	date := input.Date
	if date == "" {
		date = hike.Today()
	}

	uc := usecase.NewHikes(s.dbCtx)
	session, err := uc.Save(ctx, lifecycle.Draft{
		Name:              input.Name,
		Location:          input.Location,
		Date:              date,
		ParkingAvailable:  input.ParkingAvailable,
		Length:            formatLength(input.Length),
		Difficulty:        input.Difficulty,
		Description:       input.Description,
		WeatherCondition:  input.WeatherCondition,
		EstimatedDuration: input.EstimatedDuration,
	})
	if err != nil {
		return nil, HikeOutput{}, describeSaveError("add", err)
	}

	return nil, HikeOutput{
		Message: fmt.Sprintf("Added hike %d", session.Hike.ID),
		Hike:    session.Hike,
	}, nil
}

func (s *Server) handleUpdate(ctx context.Context, req *mcp.CallToolRequest, input UpdateInput) (*mcp.CallToolResult, HikeOutput, error) {
	uc := usecase.NewHikes(s.dbCtx)
	current, err := uc.Get(ctx, input.ID)
	if err != nil {
		return nil, HikeOutput{}, fmt.Errorf("failed to get hike: %w", err)
	}
	if current == nil {
		return nil, HikeOutput{}, fmt.Errorf("hike not found: %d", input.ID)
	}

	draft := lifecycle.DraftFromHike(current.Hike)
	setIf(&draft.Name, input.Name)
	setIf(&draft.Location, input.Location)
	setIf(&draft.Date, input.Date)
	setIf(&draft.ParkingAvailable, input.ParkingAvailable)
	setIf(&draft.Difficulty, input.Difficulty)
	setIf(&draft.Description, input.Description)
	setIf(&draft.WeatherCondition, input.WeatherCondition)
	setIf(&draft.EstimatedDuration, input.EstimatedDuration)
	if input.Length != nil {
		draft.Length = formatLength(*input.Length)
	}

	session, err := uc.Save(ctx, draft)
	if err != nil {
		return nil, HikeOutput{}, describeSaveError("update", err)
	}

	return nil, HikeOutput{
		Message: fmt.Sprintf("Updated hike %d", session.Hike.ID),
		Hike:    session.Hike,
	}, nil
}

func setIf(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func (s *Server) handleGet(ctx context.Context, req *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, GetOutput, error) {
	uc := usecase.NewHikes(s.dbCtx)
	detail, err := uc.Get(ctx, input.ID)
	if err != nil {
		return nil, GetOutput{}, fmt.Errorf("failed to get hike: %w", err)
	}
	if detail == nil {
		return nil, GetOutput{}, fmt.Errorf("hike not found: %d", input.ID)
	}

	return nil, GetOutput{
		Hike:             detail.Hike,
		ObservationCount: detail.ObservationCount,
	}, nil
}

func (s *Server) handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	uc := usecase.NewHikes(s.dbCtx)
	hikes, err := uc.List(ctx)
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to list hikes: %w", err)
	}
	if hikes == nil {
		hikes = []hike.Hike{}
	}
	return nil, ListOutput{Hikes: hikes}, nil
}

func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, ListOutput, error) {
	uc := usecase.NewHikes(s.dbCtx)
	hikes, err := uc.Search(ctx, usecase.SearchOptions{
		Name:      input.Name,
		Location:  input.Location,
		MinLength: formatBound(input.MinLength),
		MaxLength: formatBound(input.MaxLength),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("failed to search hikes: %w", err)
	}
	if hikes == nil {
		hikes = []hike.Hike{}
	}
	return nil, ListOutput{Hikes: hikes}, nil
}

func (s *Server) handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	uc := usecase.NewHikes(s.dbCtx)
	deleted, err := uc.Delete(ctx, input.ID)
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete hike: %w", err)
	}
	if !deleted {
		return nil, DeleteOutput{}, fmt.Errorf("hike not found: %d", input.ID)
	}
	return nil, DeleteOutput{Message: fmt.Sprintf("Deleted hike %d and its observations", input.ID)}, nil
}

func (s *Server) handleObservationAdd(ctx context.Context, req *mcp.CallToolRequest, input ObservationAddInput) (*mcp.CallToolResult, ObservationOutput, error) {
	uc := usecase.NewObservations(s.dbCtx)
	o, err := uc.Add(ctx, usecase.AddObservationInput{
		HikeID:      input.HikeID,
		Observation: input.Observation,
		Time:        input.Time,
		Comments:    input.Comments,
	})
	if err != nil {
		var verrs hike.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, ObservationOutput{}, verrs
		}
		return nil, ObservationOutput{}, fmt.Errorf("failed to add observation: %w", err)
	}

	return nil, ObservationOutput{
		Message:     fmt.Sprintf("Added observation %d to hike %d", o.ID, o.HikeID),
		Observation: *o,
	}, nil
}

func (s *Server) handleObservationList(ctx context.Context, req *mcp.CallToolRequest, input ObservationListInput) (*mcp.CallToolResult, ObservationListOutput, error) {
	uc := usecase.NewObservations(s.dbCtx)
	observations, err := uc.List(ctx, input.HikeID)
	if err != nil {
		return nil, ObservationListOutput{}, fmt.Errorf("failed to list observations: %w", err)
	}
	if observations == nil {
		observations = []hike.Observation{}
	}
	return nil, ObservationListOutput{Observations: observations}, nil
}

func (s *Server) handleObservationDelete(ctx context.Context, req *mcp.CallToolRequest, input ObservationDeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	uc := usecase.NewObservations(s.dbCtx)
	deleted, err := uc.Delete(ctx, input.ID)
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("failed to delete observation: %w", err)
	}
	if !deleted {
		return nil, DeleteOutput{}, fmt.Errorf("observation not found: %d", input.ID)
	}
	return nil, DeleteOutput{Message: fmt.Sprintf("Deleted observation %d", input.ID)}, nil
}
