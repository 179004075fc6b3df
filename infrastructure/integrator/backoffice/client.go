package backoffice

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mouadrarhib/front-autohall-sub001/internal/config"
	"github.com/mouadrarhib/front-autohall-sub001/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client est l'implémentation HTTP de l'ensemble des dépôts du backoffice.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient crée le client du backoffice.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Backoffice.Timeout,
		},
	}
}

var _ Repositories = (*Client)(nil)

// get exécute un GET et décode le corps sans présumer de sa forme.
func (c *Client) get(path string, query url.Values) (any, error) {
	return c.do(http.MethodGet, path, query, nil)
}

// send exécute un appel avec corps JSON (POST/PUT).
func (c *Client) send(method, path string, body any) (any, error) {
	return c.do(method, path, nil, body)
}

func (c *Client) do(method, path string, query url.Values, body any) (any, error) {
	requestID, _ := utils.GenerateID()

	fullURL := strings.TrimRight(c.cfg.Backoffice.BaseURL, "/") + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "backoffice: encodage du corps de requête")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, fullURL, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "backoffice: création de la requête %s %s", method, path)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "backoffice: appel %s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "backoffice: lecture de la réponse %s %s", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		transportErr := &TransportError{
			Status:    resp.StatusCode,
			RequestID: requestID,
		}

		// Le payload {error} est optionnel, son absence n'est pas une erreur
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &transportErr.Payload); err != nil {
				logrus.WithFields(logrus.Fields{
					"request_id": requestID,
					"status":     resp.StatusCode,
					"path":       path,
				}).Debug("Corps d'erreur du backoffice illisible")
			}
		}

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     resp.StatusCode,
			"method":     method,
			"path":       path,
		}).Warn("Échec d'un appel au backoffice")

		return nil, transportErr
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Réponse non JSON : on la traite comme une enveloppe inconnue, le
		// canonicaliseur dégradera vers les valeurs par défaut
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       path,
		}).Warn("Réponse du backoffice non décodable en JSON")
		return nil, nil
	}

	return payload, nil
}
