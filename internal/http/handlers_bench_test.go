package http

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kjstillabower/cicd-demo-service/internal/service"
)

// BenchmarkHandler_GetHello benchmarks the greeting handler alone.
func BenchmarkHandler_GetHello(b *testing.B) {
	router := newTestRouter(NewHandler(service.NewCalculator(), zap.NewNop()))
	req := httptest.NewRequest("GET", "/hello?name=Student", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}

// BenchmarkHandler_GetCalc benchmarks a divide through the calculator handler.
func BenchmarkHandler_GetCalc(b *testing.B) {
	router := newTestRouter(NewHandler(service.NewCalculator(), zap.NewNop()))
	req := httptest.NewRequest("GET", "/calc/divide?a=10&b=4", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}

// BenchmarkRouter_FullChain benchmarks a request through the production middleware chain.
func BenchmarkRouter_FullChain(b *testing.B) {
	router := NewRouter(NewHandler(service.NewCalculator(), zap.NewNop()), RouterConfig{CalculatorEnabled: true})
	req := httptest.NewRequest("GET", "/calc/add?a=2&b=3", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}
