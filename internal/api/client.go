// Package api is the typed HTTP client over the remote catalog REST API.
//
// The remote API is the system of record for every resource the console
// shows; this package only normalizes its responses into the model types and
// translates HTTP statuses into the error taxonomy in errors.go. There are no
// retries and no client-side timeouts: failures surface immediately to the
// caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/01moynul/beachstore-admin/internal/models"
)

// defaultLimit is the fixed page size requested from the listing endpoint.
const defaultLimit = 50

type ctxKey int

const ctxKeyToken ctxKey = iota

// WithToken returns a context carrying the operator's auth token. Every
// request made with that context includes the token as the auth cookie, the
// same way the browser's credential inclusion did.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

func tokenFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyToken).(string)
	return v
}

// Client calls the remote catalog API.
type Client struct {
	baseURL    string
	cookieName string
	httpc      *http.Client
	limit      int
}

// NewClient builds a Client for the API at baseURL (no trailing slash).
// cookieName is the auth cookie the API expects, normally "JwtToken".
func NewClient(baseURL, cookieName string) *Client {
	return &Client{
		baseURL:    baseURL,
		cookieName: cookieName,
		httpc:      &http.Client{},
		limit:      defaultLimit,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token := tokenFrom(ctx); token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog api: %w", err)
	}
	return res, nil
}

func isSuccess(status int) bool { return status >= 200 && status < 300 }

// ListProducts fetches one page of the product listing.
//
// The next page number is computed from the server-reported pagination block:
// it is absent once current_page + 1 exceeds total_pages.
func (c *Client) ListProducts(ctx context.Context, page int) (models.ProductPage, error) {
	path := "/products/all?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(c.limit)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.ProductPage{}, err
	}
	res, err := c.do(req)
	if err != nil {
		return models.ProductPage{}, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return models.ProductPage{}, ErrUnauthorized
	}
	if !isSuccess(res.StatusCode) {
		return models.ProductPage{}, &RequestError{Message: "Something went wrong fetching products"}
	}

	var env models.Envelope[[]models.Product]
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return models.ProductPage{}, fmt.Errorf("decode products page: %w", err)
	}

	out := models.ProductPage{Products: env.Data, CurrentPage: page}
	pg := env.Meta.Pagination
	if pg.CurrentPage+1 <= pg.TotalPages {
		next := pg.CurrentPage + 1
		out.NextPage = &next
	}
	return out, nil
}

// GetProduct fetches a single product.
//
// Apart from the explicit 404 case the decoded envelope is returned
// unmodified, including failure envelopes on other non-success statuses. The
// server's error envelopes carry their own status metadata; the view layer
// branches on that rather than on the transport status.
func (c *Client) GetProduct(ctx context.Context, id int64) (models.OperationResult[models.Envelope[models.Product]], error) {
	var out models.OperationResult[models.Envelope[models.Product]]
	req, err := c.newRequest(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return out, err
	}
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return out, ErrProductNotFound
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode product: %w", err)
	}
	return out, nil
}

// GetBrand fetches a single brand. Same pass-through contract as GetProduct.
func (c *Client) GetBrand(ctx context.Context, id int64) (models.OperationResult[models.Brand], error) {
	var out models.OperationResult[models.Brand]
	req, err := c.newRequest(ctx, http.MethodGet, "/brands/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return out, err
	}
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return out, ErrBrandNotFound
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode brand: %w", err)
	}
	return out, nil
}

// GetProductImages fetches the images of a product. A 204 response means the
// product has no images; a synthetic result is returned without touching the
// (empty) body.
func (c *Client) GetProductImages(ctx context.Context, id int64) (models.OperationResult[models.Envelope[[]models.Image]], error) {
	var out models.OperationResult[models.Envelope[[]models.Image]]
	req, err := c.newRequest(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10)+"/images", nil)
	if err != nil {
		return out, err
	}
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNoContent {
		out.Success = true
		out.Message = "No images found"
		out.StatusCode = http.StatusNoContent
		return out, nil
	}
	if res.StatusCode == http.StatusNotFound {
		return out, ErrProductNotFound
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode images: %w", err)
	}
	return out, nil
}

// CreateProduct submits a new product. On a non-success status the error
// carries the message from the decoded response body.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) (models.OperationResult[models.Envelope[models.Product]], error) {
	return c.sendProduct(ctx, http.MethodPost, "/products/create", product)
}

// UpdateProduct replaces the product with the given id. Same error contract
// as CreateProduct.
func (c *Client) UpdateProduct(ctx context.Context, id int64, product models.Product) (models.OperationResult[models.Envelope[models.Product]], error) {
	return c.sendProduct(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), product)
}

func (c *Client) sendProduct(ctx context.Context, method, path string, product models.Product) (models.OperationResult[models.Envelope[models.Product]], error) {
	var out models.OperationResult[models.Envelope[models.Product]]
	payload, err := json.Marshal(product)
	if err != nil {
		return out, err
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode product result: %w", err)
	}
	if !isSuccess(res.StatusCode) {
		return out, &RequestError{Message: out.Message}
	}
	return out, nil
}

// DeleteProduct removes a product. Failures surface as a generic message, the
// delete endpoint does not return a useful body on error.
func (c *Client) DeleteProduct(ctx context.Context, id int64) (models.OperationResult[bool], error) {
	var out models.OperationResult[bool]
	req, err := c.newRequest(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return out, err
	}
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return out, &RequestError{Message: "Something went wrong deleting the product"}
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode delete result: %w", err)
	}
	return out, nil
}

// Login exchanges credentials for an opaque token string. Any non-success
// status maps to ErrInvalidCredentials; the body is not inspected on failure.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/users/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return "", ErrInvalidCredentials
	}
	var token string
	if err := json.NewDecoder(res.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode login token: %w", err)
	}
	return token, nil
}

// UploadProductImage posts the file as the multipart field "image". On a
// non-success status the error carries the server's message.
func (c *Client) UploadProductImage(ctx context.Context, id int64, filename string, file io.Reader) (models.OperationResult[models.Envelope[models.Image]], error) {
	var out models.OperationResult[models.Envelope[models.Image]]

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return out, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return out, err
	}
	if err := mw.Close(); err != nil {
		return out, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/products/"+strconv.FormatInt(id, 10)+"/images", &body)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := c.do(req)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode image result: %w", err)
	}
	if !isSuccess(res.StatusCode) {
		return out, &RequestError{Message: out.Message}
	}
	return out, nil
}
