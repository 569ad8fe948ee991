// Package web wires the DrugLens HTTP server: routing, sessions, templates,
// static assets and the maintenance cron.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/druglens/druglens/caching"
	"github.com/druglens/druglens/config"
	"github.com/druglens/druglens/logger"
	"github.com/druglens/druglens/util/common"
	"github.com/druglens/druglens/util/random"
	"github.com/druglens/druglens/web/controller"
	"github.com/druglens/druglens/web/job"
	"github.com/druglens/druglens/web/locale"
	"github.com/druglens/druglens/web/middleware"
	"github.com/druglens/druglens/web/service"
	"github.com/druglens/druglens/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed assets
var assetsFS embed.FS

//go:embed html
var htmlFS embed.FS

//go:embed translation
var i18nFS embed.FS

const (
	maxUploadMemory       = 8 << 20
	translationCacheLimit = 50000
)

var startTime = time.Now()

type wrapAssetsFS struct {
	embed.FS
}

func (f *wrapAssetsFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open("assets/" + name)
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFile{File: file}, nil
}

type wrapAssetsFile struct {
	fs.File
}

func (f *wrapAssetsFile) Stat() (fs.FileInfo, error) {
	info, err := f.File.Stat()
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFileInfo{FileInfo: info}, nil
}

// wrapAssetsFileInfo reports the process start as modification time so
// embedded assets get a usable Last-Modified header.
type wrapAssetsFileInfo struct {
	fs.FileInfo
}

func (f *wrapAssetsFileInfo) ModTime() time.Time {
	return startTime
}

type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index    *controller.IndexController
	medicine *controller.MedicineController
	scan     *controller.ScanController
	history  *controller.HistoryController
	admin    *controller.AdminController

	cache       *caching.Cache
	scanService *service.ScanService

	cron *cron.Cron
}

func NewServer() *Server {
	return &Server{}
}

// getHtmlFiles lists web/html on disk. Debug mode only.
func (s *Server) getHtmlFiles() ([]string, error) {
	files := make([]string, 0)
	dir, _ := os.Getwd()
	err := fs.WalkDir(os.DirFS(dir), "web/html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Server) getHtmlTemplate(funcMap template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(htmlFS, "html/*.html", "html/common/*.html")
}

func sessionSecret() []byte {
	secret := config.GetSessionSecret()
	if secret == "" {
		logger.Warning("SESSION_SECRET is not set, sessions will not survive a restart")
		secret = random.Seq(32)
	}
	return []byte(secret)
}

func (s *Server) initServices() error {
	s.cache = caching.NewCache()
	if err := s.cache.Init(); err != nil {
		return err
	}
	translator := service.NewTranslateService(config.GetTranslateURL(), config.GetTranslateTimeout(), s.cache)
	s.scanService = service.NewScanService(config.IsScanEnabled(), service.NewZXingDecoder(), translator, config.GetTranslateTarget())
	if !s.scanService.Enabled() {
		logger.Warning("barcode scanning is disabled by configuration")
	}
	return nil
}

func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	if err := s.initServices(); err != nil {
		return nil, err
	}
	if err := locale.InitLocalizer(i18nFS, "translation"); err != nil {
		return nil, err
	}

	engine := gin.Default()
	engine.MaxMultipartMemory = maxUploadMemory

	if webDomain := config.GetWebDomain(); webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	store := cookie.NewStore(sessionSecret())
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.GetSessionMaxAge() * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(session.CookieName, store))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(locale.LocalizerMiddleware())
	engine.Use(middleware.RequestLogMiddleware())

	funcMap := template.FuncMap{"i18n": locale.I18n}
	engine.SetFuncMap(funcMap)

	if config.IsDebug() {
		files, err := s.getHtmlFiles()
		if err != nil {
			return nil, err
		}
		engine.LoadHTMLFiles(files...)
		engine.StaticFS("/assets", http.FS(os.DirFS("web/assets")))
	} else {
		tpl, err := s.getHtmlTemplate(funcMap)
		if err != nil {
			return nil, err
		}
		engine.SetHTMLTemplate(tpl)
		engine.StaticFS("/assets", http.FS(&wrapAssetsFS{FS: assetsFS}))
	}

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.medicine = controller.NewMedicineController(g)
	s.scan = controller.NewScanController(g, s.scanService)
	s.history = controller.NewHistoryController(g)
	s.admin = controller.NewAdminController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

func (s *Server) startTask() {
	if _, err := s.cron.AddJob("@every 1h", job.NewCheckpointJob()); err != nil {
		logger.Warning("add checkpoint job err:", err)
	}
	if _, err := s.cron.AddJob("@every 30m", job.NewTranslationCacheJob(s.cache, translationCacheLimit)); err != nil {
		logger.Warning("add translation cache job err:", err)
	}
}

func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped:", err)
		}
	}()

	s.startTask()
	return nil
}

func (s *Server) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.cache != nil {
		_ = s.cache.Flush()
	}
	var err1, err2 error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Shutdown closes the listener as well.
		err1 = s.httpServer.Shutdown(ctx)
	} else if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}
