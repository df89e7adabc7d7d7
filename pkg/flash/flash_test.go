package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenPop(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, "Venue The Fillmore was successfully listed!", "second")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	next := httptest.NewRecorder()

	messages := Pop(next, req)
	assert.Equal(t, []string{"Venue The Fillmore was successfully listed!", "second"}, messages)

	cleared := next.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, cookieName, cleared[0].Name)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestSet_NoMessagesWritesNothing(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec)

	assert.Empty(t, rec.Result().Cookies())
}

func TestPop_NoCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Pop(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestPop_MalformedCookieIsDiscarded(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "!!not-base64!!"})

	assert.Nil(t, Pop(rec, req))
	assert.Len(t, rec.Result().Cookies(), 1)
}
