// @title           TenderQuote API
// @version         1.0
// @description     Schedule of Rates catalog and tender quotation API - All endpoints used in the application.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9000

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	_ "github.com/tnso721607-maker/tenderquote3/docs"
	"github.com/tnso721607-maker/tenderquote3/handlers"
	"github.com/tnso721607-maker/tenderquote3/services"
	"github.com/tnso721607-maker/tenderquote3/storage"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

// Custom response writer to intercept HTML and inject CSS
type cssInjectorWriter struct {
	gin.ResponseWriter
	body *strings.Builder
}

func (w *cssInjectorWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *cssInjectorWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *cssInjectorWriter) Header() http.Header {
	return w.ResponseWriter.Header()
}

func (w *cssInjectorWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
}

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:5173",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "X-XSRF-TOKEN",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
		"Accept-Language", "Accept-Charset", "DNT", "Connection",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Authorization", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour // Cache preflight requests for 12 hours
	return corsConfig
}

// AuthMiddleware validates the bearer token on mutating routes.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			c.Abort()
			return
		}

		parsedToken, err := utils.ValidateJWT(token)
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims structure"})
			c.Abort()
			return
		}

		// Refresh tokens only mint new access tokens; they never authorize
		// requests directly.
		if tokenType, _ := claims["type"].(string); tokenType == "refresh" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
			c.Abort()
			return
		}

		if email, _ := claims["email"].(string); email != "" {
			c.Set("email", email)
		}
		c.Next()
	}
}

var cronRunning int32

func safeGo(
	ctx context.Context,
	wg *sync.WaitGroup,
	name string,
	fn func(context.Context) error,
	cronLogger *log.Logger,
) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s: %v\n%s", name, r, debug.Stack())
				if cronLogger != nil {
					cronLogger.Printf("PANIC in %s: %v\n%s", name, r, debug.Stack())
				}
			}
		}()

		if err := fn(ctx); err != nil {
			log.Printf("%s failed: %v", name, err)
			if cronLogger != nil {
				cronLogger.Printf("%s failed: %v", name, err)
			}
		} else {
			log.Printf("%s completed successfully", name)
			if cronLogger != nil {
				cronLogger.Printf("%s completed successfully", name)
			}
		}
	}()
}

const backupDir = "backups"
const backupRetention = 30 * 24 * time.Hour

// runCatalogBackup snapshots the catalog to a date-named JSON file. Running
// twice on the same day overwrites that day's snapshot.
func runCatalogBackup(store *storage.CatalogStore) error {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("error creating backup directory: %v", err)
	}

	entries := store.All()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling catalog backup: %v", err)
	}

	name := filepath.Join(backupDir, fmt.Sprintf("sor_backup_%s.json", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("error writing catalog backup: %v", err)
	}

	log.Printf("Catalog backup written: %s (%d entries)", name, len(entries))
	return nil
}

// pruneOldBackups removes snapshots past the retention window.
func pruneOldBackups() error {
	dirEntries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading backup directory: %v", err)
	}

	cutoff := time.Now().Add(-backupRetention)
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(backupDir, entry.Name())); err != nil {
				log.Printf("Failed to prune backup %s: %v", entry.Name(), err)
			} else {
				log.Printf("Pruned old backup: %s", entry.Name())
			}
		}
	}
	return nil
}

func main() {
	db := storage.InitDB()

	catalogStore, err := storage.NewCatalogStore(db)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	tenderStore := storage.NewTenderStore()

	creds, err := handlers.LoadAdminCredentials()
	if err != nil {
		log.Printf("Warning: %v. Login and mutating routes will be unavailable.", err)
		creds = nil
	}

	aiService, err := services.NewAIService(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v. Extraction and semantic matching will be disabled.", err)
		aiService = nil
	} else {
		log.Println("AI service initialized successfully")
	}

	matcherService := services.NewMatcherService(aiService)

	// Setup cron job to snapshot the catalog nightly at 02:30
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)

	// Open a file for cron error logging
	cronLogFile, err := os.OpenFile("cron_errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Failed to open cron error log file: %v", err)
	}
	cronLogger := log.New(cronLogFile, "CRON_ERROR: ", log.LstdFlags)

	_, err = c.AddFunc("30 2 * * *", func() {
		// ------------------ CRON LOCK ------------------
		if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
			log.Println("Previous cron still running. Skipping this run.")
			if cronLogger != nil {
				cronLogger.Println("Previous cron still running. Skipping this run.")
			}
			return
		}
		defer atomic.StoreInt32(&cronRunning, 0)

		log.Println("Starting nightly backup cron job (02:30)")

		// ------------------ TIMEOUT CONTEXT ------------------
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		var wg sync.WaitGroup

		safeGo(ctx, &wg, "CatalogBackup", func(ctx context.Context) error {
			return runCatalogBackup(catalogStore)
		}, cronLogger)

		safeGo(ctx, &wg, "PruneOldBackups", func(ctx context.Context) error {
			return pruneOldBackups()
		}, cronLogger)

		// ------------------ WAIT WITH CANCELLATION ------------------
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			log.Println("All cron jobs finished")
			if cronLogger != nil {
				cronLogger.Println("All cron jobs finished")
			}
		case <-ctx.Done():
			log.Println("Cron timeout reached, jobs cancelled")
			if cronLogger != nil {
				cronLogger.Println("Cron timeout reached, jobs cancelled")
			}
		}

		log.Println("Nightly cron cycle completed")
	})
	if err != nil {
		log.Fatalf("Failed to schedule nightly backup cron job: %v", err)
	}

	c.Start()

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. AUTH & LOGIN ====================
	r.POST("/api/login", handlers.LoginHandler(creds, db))
	r.POST("/api/refresh-token", handlers.RefreshTokenHandler(creds))

	// ==================== 2. RATE CATALOG ====================
	r.GET("/api/catalog", handlers.SearchCatalog(catalogStore))
	r.POST("/api/catalog", AuthMiddleware(), handlers.CreateRateEntry(catalogStore, db))
	r.PUT("/api/catalog/:id", AuthMiddleware(), handlers.UpdateRateEntry(catalogStore, db))
	r.DELETE("/api/catalog/:id", AuthMiddleware(), handlers.DeleteRateEntry(catalogStore, db))
	r.POST("/api/catalog/extract", AuthMiddleware(), handlers.ExtractRateEntries(catalogStore, aiService, db))

	// ==================== 3. IMPORT, EXPORT & BACKUP ====================
	r.POST("/api/catalog/import", AuthMiddleware(), handlers.ImportCatalogCSV(catalogStore, db))
	r.GET("/api/catalog/export/csv", handlers.ExportCatalogCSV(catalogStore))
	r.GET("/api/catalog/backup", handlers.ExportCatalogBackup(catalogStore))
	r.POST("/api/catalog/restore", AuthMiddleware(), handlers.RestoreCatalog(catalogStore, db))

	// ==================== 4. TENDER PROCESSING ====================
	r.POST("/api/tender/process", AuthMiddleware(), handlers.ProcessTender(catalogStore, tenderStore, aiService, matcherService))
	r.GET("/api/tender", handlers.GetTender(tenderStore))
	r.POST("/api/tender/items/:id/accept", AuthMiddleware(), handlers.AcceptTenderMatch(tenderStore))
	r.DELETE("/api/tender/items/:id", AuthMiddleware(), handlers.RemoveTenderItem(tenderStore))
	r.DELETE("/api/tender", AuthMiddleware(), handlers.DiscardTender(tenderStore))

	// ==================== 5. QUOTATION EXPORTS ====================
	r.GET("/api/quotation/export/csv", handlers.ExportQuotationCSV(tenderStore))
	r.GET("/api/quotation/export/json", handlers.ExportQuotationJSON(tenderStore))
	r.GET("/api/quotation/export/excel", handlers.ExportQuotationExcel(tenderStore))
	r.GET("/api/quotation/export/pdf", handlers.GenerateQuotationPDF(tenderStore))
	r.GET("/api/quotation/qr", handlers.GenerateQuotationQRCode(tenderStore))

	// ==================== 6. ACTIVITY LOGS ====================
	r.GET("/api/logs", AuthMiddleware(), handlers.GetActivityLogsHandler(db))

	// ==================== 7. HEALTH ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 8. SWAGGER ====================
	r.GET("/swagger/*any", func(c *gin.Context) {
		// Handle specific routes first to avoid conflicts
		if c.Param("any") == "/custom.css" {
			c.Header("Content-Type", "text/css")
			c.String(http.StatusOK, `
/* Beautified Swagger Header Styles */
.swagger-ui .topbar {
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  padding: 20px 0;
  box-shadow: 0 2px 10px rgba(0,0,0,0.1);
}

.swagger-ui .info {
  margin: 40px 0;
  padding: 30px;
  background: #fff;
  border-radius: 12px;
  box-shadow: 0 4px 20px rgba(0,0,0,0.08);
}

.swagger-ui .info .title {
  font-size: 36px !important;
  font-weight: 700 !important;
  color: #2c3e50 !important;
  margin-bottom: 10px !important;
}

.swagger-ui .info .version {
  display: inline-block;
  background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
  color: #fff;
  padding: 6px 16px;
  border-radius: 20px;
  font-size: 14px;
  font-weight: 600;
  margin-left: 15px;
  margin-bottom: 15px;
}

.swagger-ui .info .base-url {
  background: #f8f9fa;
  padding: 15px 20px;
  border-radius: 8px;
  margin: 20px 0;
  border-left: 4px solid #667eea;
  font-family: 'Monaco', 'Menlo', monospace;
  font-size: 14px;
  color: #495057;
}

.swagger-ui .scheme-container {
  background: #f8f9fa;
  padding: 20px;
  border-radius: 8px;
  margin: 20px 0;
}
`)
			return
		}

		if c.Param("any") == "/doc.json" {
			// Prefer the processed swagger.json file when present
			swaggerJSON, err := os.ReadFile("docs/swagger.json")
			if err == nil && len(swaggerJSON) > 100 {
				c.Header("Content-Type", "application/json")
				c.String(http.StatusOK, string(swaggerJSON))
				return
			}

			// Fallback to the registered doc
			doc, err := swag.ReadDoc("swagger")
			if err != nil {
				c.String(http.StatusInternalServerError, `{"error":"swagger doc not found"}`)
				return
			}
			c.Header("Content-Type", "application/json")
			c.String(http.StatusOK, doc)
			return
		}

		// Intercept Swagger UI HTML to inject custom CSS
		if c.Param("any") == "/index.html" || c.Param("any") == "/" {
			originalWriter := c.Writer
			captureWriter := &cssInjectorWriter{
				ResponseWriter: originalWriter,
				body:           &strings.Builder{},
			}
			c.Writer = captureWriter

			ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"))(c)

			c.Writer = originalWriter

			html := captureWriter.body.String()

			if strings.Contains(html, "</head>") {
				cssLink := `    <link rel="stylesheet" type="text/css" href="/swagger/custom.css">
`
				html = strings.Replace(html, "</head>", cssLink+"</head>", 1)
				for k, v := range captureWriter.Header() {
					if k != "Content-Length" {
						c.Header(k, strings.Join(v, ", "))
					}
				}
				c.Header("Content-Type", "text/html; charset=utf-8")
				c.Header("Content-Length", strconv.Itoa(len(html)))
				c.String(http.StatusOK, html)
				return
			}

			c.String(http.StatusOK, html)
			return
		}

		// Serve Swagger UI for all other routes (static files, etc.)
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"))(c)
	})

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	// Validate port is numeric
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
