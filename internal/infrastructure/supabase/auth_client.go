package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tu-usuario/libreria-api/internal/domain/entity"
)

// AuthClient cliente del servicio de auth alojado (GoTrue). Intercambia el par
// access/refresh por una sesión validada. La validez criptográfica y la
// expiración las decide el servicio, no este cliente: aquí solo se hace la
// llamada y se leen claims sin verificar como respaldo.
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient construye el cliente con la URL del proyecto y la anon key.
func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo de tokens de GoTrue ─────────────────────────────

type tokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID string `json:"id"`
	} `json:"user"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ExchangeSession valida el par de tokens contra el endpoint de refresh del
// servicio de auth y devuelve la sesión resultante. Cualquier fallo del
// intercambio (red, 4xx, respuesta sin sesión) se devuelve como error; el
// caso de uso de autorización lo traduce a sesión inválida.
func (c *AuthClient) ExchangeSession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error) {
	body, err := json.Marshal(tokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("codificar petición de token: %w", err)
	}

	url := c.baseURL + "/auth/v1/token?grant_type=refresh_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("crear petición de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamar servicio de auth: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("leer respuesta de auth: %w", err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de auth: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := tr.ErrorDescription
		if msg == "" {
			msg = tr.Error
		}
		return nil, fmt.Errorf("intercambio de sesión rechazado (HTTP %d): %s", resp.StatusCode, msg)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("el servicio de auth no devolvió sesión")
	}

	session := &entity.Session{
		UserID:       tr.User.ID,
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
	}
	if tr.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	// Respaldo: si la respuesta no trae el usuario o la expiración, se leen
	// del propio access token. Claims sin verificar: la firma ya la validó GoTrue.
	if session.UserID == "" || session.ExpiresAt.IsZero() {
		sub, exp, err := peekClaims(tr.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("leer claims del access token: %w", err)
		}
		if session.UserID == "" {
			session.UserID = sub
		}
		if session.ExpiresAt.IsZero() {
			session.ExpiresAt = exp
		}
	}
	if session.UserID == "" {
		return nil, fmt.Errorf("sesión sin identidad de usuario")
	}
	return session, nil
}

// peekClaims extrae sub y exp de un JWT sin validar la firma.
func peekClaims(token string) (sub string, exp time.Time, err error) {
	claims := jwt.MapClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", time.Time{}, err
	}
	sub, err = claims.GetSubject()
	if err != nil {
		return "", time.Time{}, err
	}
	expClaim, err := claims.GetExpirationTime()
	if err != nil {
		return "", time.Time{}, err
	}
	if expClaim != nil {
		exp = expClaim.Time
	}
	return sub, exp, nil
}
