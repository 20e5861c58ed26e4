package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"strconv"
	"time"
)

type ExportService struct {
	Responses *repository.ResponseRepository
	Quests    *repository.QuestionnaireRepository
	Storage   StorageProvider
}

func NewExportService(responses *repository.ResponseRepository, quests *repository.QuestionnaireRepository, storage StorageProvider) *ExportService {
	return &ExportService{Responses: responses, Quests: quests, Storage: storage}
}

type ExportResult struct {
	URL  string `json:"url"`
	Rows int    `json:"rows"`
	Name string `json:"name"`
}

// ExportCSV renders every response of a questionnaire as a CSV file, one row
// per response with a column per question, and uploads it to storage.
func (s *ExportService) ExportCSV(ctx context.Context, questionnaireID uint) (*ExportResult, error) {
	q, err := s.Quests.FindByID(questionnaireID)
	if err != nil {
		return nil, err
	}

	questions, err := s.Quests.ListQuestions(questionnaireID)
	if err != nil {
		return nil, err
	}

	responses, err := s.Responses.ListAllWithAnswers(questionnaireID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"response_id", "respondent_name", "respondent_email", "submitted_at", "score", "risk_level"}
	for _, question := range questions {
		header = append(header, fmt.Sprintf("q%d_%s", question.ID, question.Type))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, resp := range responses {
		row := []string{
			strconv.FormatUint(uint64(resp.ID), 10),
			resp.RespondentName,
			resp.RespondentEmail,
			resp.SubmittedAt.Format(time.RFC3339),
			formatNullableFloat(resp.Score),
			formatNullableString(resp.RiskLevel),
		}
		byQuestion := make(map[uint]string, len(resp.Answers))
		for _, a := range resp.Answers {
			byQuestion[a.QuestionID] = answerCell(a)
		}
		for _, question := range questions {
			row = append(row, byQuestion[question.ID])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("exports/questionnaire_%d_%s.csv", q.ID, time.Now().Format("20060102T150405"))
	url, err := s.Storage.Save(ctx, name, "text/csv", bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, err
	}

	return &ExportResult{URL: url, Rows: len(responses), Name: name}, nil
}

func answerCell(a model.Answer) string {
	v, err := a.DecodeValue()
	if err != nil {
		return string(a.Value)
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return string(a.Value)
	}
}

func formatNullableFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatNullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
