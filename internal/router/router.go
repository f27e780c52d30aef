package router

import (
	"time"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/config"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/handler"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/middleware"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/repository"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	proveedorRepo := repository.NewProveedorRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	ordenRepo := repository.NewOrdenCompraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	codigos := service.NewGeneradorCodigo(nil, nil)
	proveedorSvc := service.NewProveedorService(proveedorRepo, ordenRepo, cfg.PageSizeDefault, cfg.PageSizeMax)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, proveedorRepo, rdb, cfg.PageSizeDefault, cfg.PageSizeMax)
	ordenSvc := service.NewOrdenCompraService(ordenRepo, proveedorRepo, catalogoRepo, codigos, cfg.PageSizeDefault, cfg.PageSizeMax)

	// ── Handlers ─────────────────────────────────────────────────────────────
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	ordenesH := handler.NewOrdenesCompraHandler(ordenSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		prov := v1.Group("/proveedores")
		{
			prov.POST("", proveedoresH.Crear)
			prov.GET("", proveedoresH.Listar)
			prov.GET("/:id", proveedoresH.ObtenerPorID)
			prov.PATCH("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)

			// Catálogo proveedor-producto
			prov.POST("/:id/productos", catalogoH.Asociar)
			prov.GET("/:id/productos", catalogoH.ListarPorProveedor)
			prov.DELETE("/:id/productos/:producto_id", catalogoH.Desasociar)
		}

		// Consulta inversa: proveedores que abastecen un producto
		v1.GET("/productos/:producto_id/proveedores", catalogoH.ProveedoresPorProducto)

		oc := v1.Group("/ordenes-compra")
		{
			oc.POST("", ordenesH.Crear)
			oc.GET("", ordenesH.Listar)
			oc.GET("/:id", ordenesH.Obtener)
			oc.POST("/:id/marcar-enviada", ordenesH.MarcarEnviada)
			oc.POST("/:id/marcar-completa", ordenesH.MarcarCompleta)
			oc.POST("/:id/cancelar", ordenesH.Cancelar)
			oc.DELETE("/:id", ordenesH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
