package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestItemID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		param  string
		want   uint
		wantOK bool
	}{
		{"plain id", "42", 42, true},
		{"zero", "0", 0, true},
		{"negative", "-4", 0, false},
		{"junk", "abc", 0, false},
		{"empty", "", 0, false},
		{"decimal", "1.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			got, ok := itemID(c)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("itemID(%q) = (%d, %v), want (%d, %v)", tt.param, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
