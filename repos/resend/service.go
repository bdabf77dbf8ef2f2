package resend

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	resend "github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Service sends league mails through Resend.
type Service struct {
	emails  sender
	from    string
	hostURL string
}

// NewService creates a mail service for the given Resend API key.
func NewService(resendKey, from, hostURL string) *Service {
	return &Service{
		emails:  resend.NewClient(resendKey).Emails,
		from:    from,
		hostURL: hostURL,
	}
}

func (s *Service) SendMatchReport(ctx context.Context, to []string, report MatchReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := renderReport(fmt.Sprintf("%s/matches/%s", s.hostURL, report.Match.ID), report)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      to,
		Subject: reportSubject(report),
		Html:    body,
	}

	sent, err := s.emails.Send(params)
	if err != nil {
		log.Error().Err(err).Str("match_id", report.Match.ID).Msg("Failed to send match report")
		return fmt.Errorf("sending match report for %s: %w", report.Match.ID, err)
	}

	log.Info().Str("match_id", report.Match.ID).Str("mail_id", sent.Id).Int("recipients", len(to)).Msg("Match report sent")
	return nil
}

func reportSubject(report MatchReport) string {
	return fmt.Sprintf("%s %d - %d %s",
		report.Match.FirstOpponent.Name,
		report.Score.First,
		report.Score.Second,
		report.Match.SecondOpponent.Name,
	)
}

func renderReport(url string, report MatchReport) (string, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		MatchReport
		URL string
	}{report, url})
	if err != nil {
		return "", fmt.Errorf("rendering match report: %w", err)
	}
	return buf.String(), nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f4f4f4;
            margin: 0;
            padding: 20px;
        }
        .container {
            background-color: #ffffff;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        .score {
            font-size: 32px;
            text-align: center;
        }
        .button {
            display: block;
            width: 200px;
            height: 50px;
            margin: 20px auto;
            background-color: #007BFF;
            color: #ffffff;
            font-size: 16px;
            text-align: center;
            line-height: 50px;
            text-decoration: none;
            border-radius: 5px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>Round {{.Match.Round}}: {{.Match.FirstOpponent.Name}} vs {{.Match.SecondOpponent.Name}}</h2>
        <p class="score">{{.Score.First}} - {{.Score.Second}}</p>
        <p>{{.Label}}</p>
        {{- if .Timeline}}
        <ul>
        {{- range .Timeline}}
            <li>{{.Minute}}' {{.Type}} ({{.TeamID}}{{if .PlayerID}}, {{.PlayerID}}{{end}})</li>
        {{- end}}
        </ul>
        {{- end}}
        <a href="{{.URL}}" class="button">Open match</a>
    </div>
</body>
</html>`))
