// Command asktester fires a batch of questions at the answering pipeline and
// prints where each answer came from.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/fallback"
)

var defaultQuestions = []string{
	"Halo!",
	"Siapa kamu?",
	"Apa hobimu?",
	"Proyek apa yang paling dibanggakan?",
	"Keahlian apa saja yang dimiliki?",
	"Kuliah di mana?",
	"Siapa pacarmu?",
	"Berapa gajinya?",
	"Lagu favoritnya apa?",
	"Terima kasih!",
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	mode := flag.String("mode", "http", "test mode: http (running server) or local (fallback core in-process)")
	baseURL := flag.String("url", "http://localhost:8000", "server base URL for http mode")
	endpoint := flag.String("endpoint", "/ask", "endpoint for http mode: /ask or /ask-mock")
	file := flag.String("file", "", "file with one question per line (default: built-in set)")
	question := flag.String("q", "", "ask a single question")
	profilePath := flag.String("profile", "", "profile YAML for local mode (default: embedded)")
	seed := flag.Int64("seed", 0, "random seed for local mode (0 means unseeded)")
	timeout := flag.Duration("timeout", 45*time.Second, "per-request timeout")

	flag.Parse()

	questions, err := loadQuestions(*question, *file)
	if err != nil {
		logger.Fatal("failed to read questions", zap.Error(err))
	}

	switch *mode {
	case "http":
		runHTTP(logger, *baseURL+*endpoint, questions, *timeout)
	case "local":
		runLocal(logger, *profilePath, *seed, questions)
	default:
		flag.Usage()
		logger.Fatal("unknown mode, use -mode=http or -mode=local", zap.String("mode", *mode))
	}
}

func loadQuestions(single, path string) ([]string, error) {
	if strings.TrimSpace(single) != "" {
		return []string{single}, nil
	}
	if path == "" {
		return defaultQuestions, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
	}
	return out, scanner.Err()
}

func runHTTP(logger *zap.Logger, url string, questions []string, timeout time.Duration) {
	client := &http.Client{Timeout: timeout}

	for _, q := range questions {
		body, _ := json.Marshal(map[string]string{"question": q})
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			cancel()
			logger.Fatal("failed to build request", zap.Error(err))
		}
		req.Header.Set("Content-Type", "application/json")

		started := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			cancel()
			logger.Error("request failed", zap.String("question", q), zap.Error(err))
			continue
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()

		var payload struct {
			Response string `json:"response"`
			Detail   string `json:"detail"`
		}
		_ = json.Unmarshal(raw, &payload)

		fmt.Printf("Q: %s\n", q)
		fmt.Printf("   status=%d source=%s category=%s elapsed=%s\n",
			resp.StatusCode, resp.Header.Get("X-Answer-Source"), resp.Header.Get("X-Answer-Category"), time.Since(started).Round(time.Millisecond))
		if payload.Detail != "" {
			fmt.Printf("   error: %s\n\n", payload.Detail)
			continue
		}
		fmt.Printf("A: %s\n\n", payload.Response)
	}
}

func runLocal(logger *zap.Logger, profilePath string, seed int64, questions []string) {
	p, err := profile.Load(profilePath)
	if err != nil {
		logger.Fatal("failed to load profile", zap.Error(err))
	}

	var opts []fallback.Option
	if seed != 0 {
		opts = append(opts, fallback.WithRand(fallback.NewSeeded(seed)))
	}
	composer, err := fallback.NewComposer(p, opts...)
	if err != nil {
		logger.Fatal("failed to build composer", zap.Error(err))
	}

	for _, q := range questions {
		cat, keyword := category.Explain(q)
		answer, err := composer.Compose(q, cat)
		fmt.Printf("Q: %s\n   category=%s keyword=%q sensitive=%t\n", q, cat, keyword, cat.Sensitive())
		if err != nil {
			fmt.Printf("   error: %v\n\n", err)
			continue
		}
		fmt.Printf("A: %s\n\n", answer)
	}
}
