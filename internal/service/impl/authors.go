package core

import (
	"context"
	"fmt"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/conversions"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
)

func (s *AppService) GetAuthor(ctx context.Context, id string, page int, token string) (domain.Author, domain.ReportPage, *domain.Author, error) {
	args := graphql.Arguments{}.
		AddString("id", graphql.EncodeGlobalID("Author", id))
	slice := sliceArgs(graphql.Arguments{}, page, config.ReportsPerPage)

	// the nested report nodes do not refetch the author; their byline is
	// filled in below from the enclosing author
	body := fmt.Sprintf(`node%s {
    ... on Author {
        %s
        reports%s {
            totalCount
            edges {
                node {
                    %s
                }
            }
        }
    }
}`, args.Wrap(), graphql.AuthorFields, slice.Wrap(), graphql.ReportFields)

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return domain.Author{}, domain.ReportPage{}, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return domain.Author{}, domain.ReportPage{}, nil, err
	}

	raw, ok := data["node"].(map[string]any)
	if !ok {
		return domain.Author{}, domain.ReportPage{}, viewer, graphql.ErrNotFound
	}

	author, err := conversions.ConvertAuthor(raw)
	if err != nil {
		return domain.Author{}, domain.ReportPage{}, viewer, err
	}

	rawReports, err := objectField(raw, "reports")
	if err != nil {
		return author, domain.ReportPage{}, viewer, err
	}
	reports, err := s.reportConnection(rawReports)
	if err != nil {
		return author, reports, viewer, err
	}

	for i := range reports.Reports {
		byline := author
		reports.Reports[i].Author = &byline
	}

	return author, reports, viewer, nil
}

func (s *AppService) GetAuthors(ctx context.Context, page int, sort domain.AuthorSort, token string) (domain.AuthorPage, *domain.Author, error) {
	args := graphql.Arguments{}
	switch sort {
	case domain.SortTotalReports:
		args = args.Add("sort", "TOTAL_REPORTS")
	case domain.SortLastNameReversed:
		args = args.Add("sort", "LAST_NAME").AddBool("reversed", true)
	}
	args = sliceArgs(args, page, config.AuthorsPerPage)

	body := fmt.Sprintf(`authors%s {
    totalCount
    edges {
        node {
            %s
            totalReports
        }
    }
}`, args.Wrap(), graphql.AuthorFields)

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return domain.AuthorPage{}, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return domain.AuthorPage{}, nil, err
	}

	raw, err := objectField(data, "authors")
	if err != nil {
		return domain.AuthorPage{}, viewer, err
	}
	authors, err := s.authorConnection(raw)
	return authors, viewer, err
}
