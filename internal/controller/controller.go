package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/nathanpras/storefront-service/internal/dto"
	"github.com/nathanpras/storefront-service/internal/service"
	pkgdto "github.com/nathanpras/storefront-service/pkg/dto"
	"github.com/nathanpras/storefront-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	productService service.ProductService
	orderService   service.OrderService
	systemService  service.SystemService
}

func CreateStorefrontController(e *echo.Group, productService service.ProductService, orderService service.OrderService, systemService service.SystemService) {
	c := Controller{
		productService: productService,
		orderService:   orderService,
		systemService:  systemService,
	}
	e.GET("/", c.Root)
	e.GET("/schema", c.GetSchema)
	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/orders", c.AddOrder)
	e.GET("/test", c.GetHealth)
}

func (c *Controller) Root(e echo.Context) error {
	return response.WriteSuccessResponse(e, "Storefront API running", nil)
}

func (c *Controller) GetSchema(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", dto.SchemaResponse{
		Collections: []string{"user", "product", "order"},
		Notes:       "Records carry arbitrary extra fields beyond the typed core",
	})
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.productService.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", responsePayload)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	id, err := c.productService.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", id)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	responsePayload, err := c.productService.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *Controller) AddOrder(e echo.Context) error {
	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	id, err := c.orderService.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", id)
}

func (c *Controller) GetHealth(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.systemService.Health(e.Request().Context()))
}
