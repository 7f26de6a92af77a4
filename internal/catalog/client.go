package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/models"
	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/token"
)

// Client talks to the remote catalog endpoint: GET lists the whole
// catalog, POST (multipart) creates one product.
//
// The HTTP client carries no timeout on purpose: a hung request stalls
// that operation and nothing else, there is no user-facing timeout.
type Client struct {
	baseURL string
	tokens  token.Reader
	http    *http.Client
}

func NewClient(baseURL string, tokens token.Reader) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// FetchProducts returns the full catalog. No pagination: the endpoint
// ships everything in one response.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	products := make([]models.Product, 0)
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return products, nil
}

// CreateProductInput is a validated form draft ready to be forwarded.
type CreateProductInput struct {
	Name        string
	Price       string
	Category    string
	Image       *multipart.FileHeader
	Description string
	Shipment    string
}

// CreateProduct forwards the draft as a multipart POST. Field order
// matches what the page has always sent: name, price, category, image,
// description, shipment. The stored authorization token is attached
// as-is; if none is stored the header is simply absent and the backend
// rejects the request.
func (c *Client) CreateProduct(ctx context.Context, input CreateProductInput) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("name", input.Name); err != nil {
		return err
	}
	if err := writer.WriteField("price", input.Price); err != nil {
		return err
	}
	if err := writer.WriteField("category", input.Category); err != nil {
		return err
	}
	if err := writeImagePart(writer, input.Image); err != nil {
		return err
	}
	if err := writer.WriteField("description", input.Description); err != nil {
		return err
	}
	if err := writer.WriteField("shipment", input.Shipment); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	echo, _ := io.ReadAll(resp.Body)
	log.Printf("[POST catalog] product accepted: %s", strings.TrimSpace(string(echo)))
	return nil
}

func writeImagePart(writer *multipart.Writer, file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("image file is required")
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name="image"; filename="%s"`,
		strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(file.Filename),
	))
	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(part, src)
	return err
}
