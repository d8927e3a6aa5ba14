package mockapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"animalsctl/pkg/logging"

	"github.com/gin-gonic/gin"
)

const routerSubsystem = "MockAPI"

// DefaultBasePath matches the path prefix of the public service.
const DefaultBasePath = "/api"

// NewRouter exposes store on the five read endpoints of the Animals service,
// mounted under basePath.
func NewRouter(store Store, basePath string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(corsMiddleware())

	group := r.Group(normaliseBasePath(basePath))
	h := &handlers{store: store}
	group.GET("/animals", h.listAnimals)
	group.GET("/animals/:id", h.getAnimal)
	group.GET("/environments", h.listEnvironments)
	group.GET("/environments/:id", h.getEnvironment)
	r.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return r
}

func normaliseBasePath(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

type handlers struct {
	store Store
}

// listAnimals serves both /animals and /animals?environmentId=.
func (h *handlers) listAnimals(c *gin.Context) {
	if envID, ok := c.GetQuery("environmentId"); ok {
		animals, err := h.store.AnimalsByEnvironment(c.Request.Context(), envID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, animals)
		return
	}
	animals, err := h.store.Animals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func (h *handlers) getAnimal(c *gin.Context) {
	animal, err := h.store.Animal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *handlers) listEnvironments(c *gin.Context) {
	environments, err := h.store.Environments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, environments)
}

func (h *handlers) getEnvironment(c *gin.Context) {
	environment, err := h.store.Environment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, environment)
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	logging.Error(routerSubsystem, err, "store failure on %s", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug(routerSubsystem, "%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start))
	}
}
