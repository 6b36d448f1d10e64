package core

import (
	"context"
	"fmt"

	"github.com/openlobby/olapp/internal/config"
	"github.com/openlobby/olapp/internal/conversions"
	"github.com/openlobby/olapp/internal/domain"
	"github.com/openlobby/olapp/internal/graphql"
)

func (s *AppService) SearchReports(ctx context.Context, query string, page int, token string) (domain.ReportPage, *domain.Author, error) {
	args := graphql.Arguments{}.
		AddString("query", query).
		AddBool("highlight", true)
	args = sliceArgs(args, page, config.ReportsPerPage)

	body := fmt.Sprintf(`searchReports%s {
    totalCount
    edges {
        node {
            %s
            author {
                %s
            }
        }
    }
}`, args.Wrap(), graphql.ReportFields, graphql.AuthorFields)

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return domain.ReportPage{}, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return domain.ReportPage{}, nil, err
	}

	raw, err := objectField(data, "searchReports")
	if err != nil {
		return domain.ReportPage{}, viewer, err
	}
	reports, err := s.reportConnection(raw)
	return reports, viewer, err
}

func (s *AppService) GetReport(ctx context.Context, id, token string) (domain.Report, *domain.Author, error) {
	args := graphql.Arguments{}.
		AddString("id", graphql.EncodeGlobalID("Report", id))

	body := fmt.Sprintf(`node%s {
    ... on Report {
        %s
        isDraft
        hasRevisions
        author {
            %s
        }
        revisions {
            %s
            isDraft
        }
    }
}`, args.Wrap(), graphql.ReportFields, graphql.AuthorFields, graphql.ReportFields)

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return domain.Report{}, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return domain.Report{}, nil, err
	}

	raw, ok := data["node"].(map[string]any)
	if !ok {
		return domain.Report{}, viewer, graphql.ErrNotFound
	}

	report, err := conversions.ConvertReport(raw, s.Config.Location)
	return report, viewer, err
}

func (s *AppService) GetReportDrafts(ctx context.Context, token string) ([]domain.Report, *domain.Author, error) {
	body := `reportDrafts {
    id
    date
    title
    body
}`

	data, err := s.Client.Query(ctx, body, nil, token)
	if err != nil {
		return nil, nil, err
	}
	viewer, err := conversions.ViewerFromData(data)
	if err != nil {
		return nil, nil, err
	}

	rawDrafts, _ := data["reportDrafts"].([]any)
	drafts := make([]domain.Report, 0, len(rawDrafts))
	for _, r := range rawDrafts {
		raw, ok := r.(map[string]any)
		if !ok {
			continue
		}
		draft, err := conversions.ConvertReport(raw, s.Config.Location)
		if err != nil {
			return nil, viewer, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, viewer, nil
}

const reportMutation = `mutation %s ($input: %s!) {
    %s (input: $input) {
        report {
            id
            isDraft
        }
    }
}`

func (s *AppService) CreateReport(ctx context.Context, input domain.ReportInput, token string) (string, error) {
	document := fmt.Sprintf(reportMutation, "createReport", "CreateReportInput", "createReport")
	return s.submitReport(ctx, document, "createReport", reportInputVariables(input), token)
}

func (s *AppService) UpdateReport(ctx context.Context, input domain.ReportInput, token string) (string, error) {
	variables := reportInputVariables(input)
	variables["id"] = graphql.EncodeGlobalID("Report", input.ID)

	document := fmt.Sprintf(reportMutation, "updateReport", "UpdateReportInput", "updateReport")
	return s.submitReport(ctx, document, "updateReport", variables, token)
}

// reportInputVariables routes the user's free text through the variables
// channel; none of it is ever interpolated into document text.
func reportInputVariables(input domain.ReportInput) map[string]any {
	return map[string]any{
		"title":             input.Title,
		"body":              input.Body,
		"receivedBenefit":   input.ReceivedBenefit,
		"providedBenefit":   input.ProvidedBenefit,
		"date":              input.Date.Format("2006-01-02"),
		"ourParticipants":   input.OurParticipants,
		"otherParticipants": input.OtherParticipants,
		"isDraft":           input.IsDraft,
	}
}

func (s *AppService) submitReport(ctx context.Context, document, field string, input map[string]any, token string) (string, error) {
	variables := map[string]any{"input": input}
	data, err := s.Client.Execute(ctx, document, variables, token)
	if err != nil {
		return "", err
	}

	payload, err := objectField(data, field)
	if err != nil {
		return "", err
	}
	report, err := objectField(payload, "report")
	if err != nil {
		return "", err
	}

	globalID, _ := report["id"].(string)
	_, id, err := graphql.DecodeGlobalID(globalID)
	return id, err
}
