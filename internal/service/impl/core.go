package core

import (
	"fmt"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/conversions"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
	"github.com/openlobby/olapp/internal/service"
	"github.com/openlobby/olapp/internal/state"
)

type AppService struct {
	Config config.Configuration
	Client *graphql.Client
}

func New(state *state.State) service.Service {
	return &AppService{
		Config: state.Config,
		Client: state.Client,
	}
}

// sliceArgs builds the connection slice for a 1-based page: the first page
// has no cursor, later pages start after offset (page-1)*perPage.
func sliceArgs(args graphql.Arguments, page, perPage int) graphql.Arguments {
	args = args.AddInt("first", perPage)
	if page > 1 {
		args = args.AddString("after", graphql.EncodeCursor((page-1)*perPage))
	}
	return args
}

// reportConnection converts a raw connection of report edges, keeping the
// server-defined edge order.
func (s *AppService) reportConnection(raw map[string]any) (domain.ReportPage, error) {
	page := domain.ReportPage{TotalCount: intField(raw, "totalCount")}

	edges, _ := raw["edges"].([]any)
	page.Reports = make([]domain.Report, 0, len(edges))
	for _, e := range edges {
		node, ok := edgeNode(e)
		if !ok {
			continue
		}
		report, err := conversions.ConvertReport(node, s.Config.Location)
		if err != nil {
			return page, err
		}
		page.Reports = append(page.Reports, report)
	}
	return page, nil
}

func (s *AppService) authorConnection(raw map[string]any) (domain.AuthorPage, error) {
	page := domain.AuthorPage{TotalCount: intField(raw, "totalCount")}

	edges, _ := raw["edges"].([]any)
	page.Authors = make([]domain.Author, 0, len(edges))
	for _, e := range edges {
		node, ok := edgeNode(e)
		if !ok {
			continue
		}
		author, err := conversions.ConvertAuthor(node)
		if err != nil {
			return page, err
		}
		page.Authors = append(page.Authors, author)
	}
	return page, nil
}

func edgeNode(edge any) (map[string]any, bool) {
	e, ok := edge.(map[string]any)
	if !ok {
		return nil, false
	}
	node, ok := e["node"].(map[string]any)
	return node, ok
}

func intField(raw map[string]any, key string) int {
	n, _ := raw[key].(float64)
	return int(n)
}

func objectField(data map[string]any, key string) (map[string]any, error) {
	obj, ok := data[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response missing %s", key)
	}
	return obj, nil
}
