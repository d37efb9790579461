package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-signup/pkg/helpers"
	"github.com/oksasatya/go-auth-signup/pkg/mailer"
	mailtpl "github.com/oksasatya/go-auth-signup/pkg/mailer/templates"
)

type outcome int

const (
	ack     outcome = iota // delivered
	drop                   // nack without requeue: the message can never succeed
	requeue                // nack with requeue: transient send failure
)

var errNoContent = errors.New("email job has neither template nor body")

type worker struct {
	sender      mailer.Sender
	geo         mailtpl.GeoResolver
	logger      *logrus.Logger
	sendTimeout time.Duration
}

// process decodes, renders and sends one queued email job.
func (w *worker) process(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		helpers.LogError(w.logger, "bad message", err, nil)
		return drop
	}
	if strings.TrimSpace(job.To) == "" {
		helpers.LogError(w.logger, "bad message", errors.New("missing recipient"), nil)
		return drop
	}

	subject, text, html, err := w.render(ctx, &job)
	if err != nil {
		helpers.LogError(w.logger, "render failed", err, logrus.Fields{"template": job.Template})
		return drop
	}

	c, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()
	if err := w.sender.Send(c, job.To, subject, text, html); err != nil {
		helpers.LogError(w.logger, "send failed", err, logrus.Fields{"template": job.Template, "to": job.To})
		return requeue
	}
	helpers.LogInfo(w.logger, "email sent", logrus.Fields{"template": job.Template, "to": job.To})
	return ack
}

func (w *worker) render(ctx context.Context, job *mailer.EmailJob) (string, string, string, error) {
	if job.Template == "" {
		if job.Subject == "" || (job.Text == "" && job.HTML == "") {
			return "", "", "", errNoContent
		}
		return job.Subject, job.Text, job.HTML, nil
	}

	helpers.EnsureRecipientAndEmail(job)
	if w.geo != nil {
		helpers.LocalizeTimesIfPossible(ctx, w.geo, job.Data)
		if loc, ok := job.Data["Location"]; !ok || fmt.Sprintf("%v", loc) == "" {
			if ip, ok := job.Data["IP"]; ok && fmt.Sprintf("%v", ip) != "" {
				if g, err := w.geo.Lookup(ctx, fmt.Sprintf("%v", ip)); err == nil {
					job.Data["Location"] = mailtpl.FormatGeo(g)
				}
			}
		}
	}

	switch job.Template {
	case mailtpl.Welcome, mailtpl.LoginNotification:
		return mailtpl.Render(job.Template, job.Data)
	default:
		return "", "", "", fmt.Errorf("unknown template %q", job.Template)
	}
}
