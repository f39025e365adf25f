package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/internal/handler"
	"github.com/sideshiftai/basepulse-ido/internal/service"
)

func Setup(svc *service.Service) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "basepulse-ido",
		})
	})

	factoryHandler := handler.NewFactoryHandler(svc)
	saleHandler := handler.NewSaleHandler(svc)
	vestingHandler := handler.NewVestingHandler(svc)
	whitelistHandler := handler.NewWhitelistHandler(svc)

	v1 := r.Group("/api/v1")
	{
		sales := v1.Group("/sales")
		{
			sales.POST("", factoryHandler.CreateSale)
			sales.GET("", factoryHandler.GetSales)
			sales.GET("/:id", factoryHandler.GetSale)
			sales.DELETE("/:id", factoryHandler.DeactivateSale)

			sales.POST("/:id/config", saleHandler.ConfigureSale)
			sales.GET("/:id/config", saleHandler.GetSaleConfig)
			sales.POST("/:id/tiers/:tier", saleHandler.ConfigureTier)
			sales.GET("/:id/tiers/:tier", saleHandler.GetTier)
			sales.POST("/:id/vesting-params", saleHandler.SetVestingParams)
			sales.POST("/:id/contributions", saleHandler.Contribute)
			sales.GET("/:id/contributions/:address", saleHandler.GetUserContribution)
			sales.POST("/:id/finalize", saleHandler.FinalizeSale)
			sales.POST("/:id/pause", saleHandler.PauseSale)
			sales.POST("/:id/unpause", saleHandler.UnpauseSale)
			sales.POST("/:id/withdraw", saleHandler.WithdrawFunds)
			sales.POST("/:id/claims/initial", saleHandler.ClaimInitialUnlock)
			sales.POST("/:id/refunds", saleHandler.ClaimRefund)

			sales.POST("/:id/vesting/schedules", vestingHandler.CreateSchedule)
			sales.POST("/:id/vesting/schedule-batches", vestingHandler.CreateScheduleBatch)
			sales.GET("/:id/vesting/schedules/:sid", vestingHandler.GetSchedule)
			sales.GET("/:id/vesting/schedules/:sid/claimable", vestingHandler.GetClaimableAmount)
			sales.POST("/:id/vesting/schedules/:sid/claim", vestingHandler.Claim)
			sales.POST("/:id/vesting/schedules/:sid/revoke", vestingHandler.Revoke)
			sales.GET("/:id/vesting/users/:address", vestingHandler.GetUserSchedules)
			sales.GET("/:id/vesting/total-claims", vestingHandler.GetTotalClaims)

			sales.PUT("/:id/whitelist/root", whitelistHandler.SetMerkleRoot)
			sales.PUT("/:id/whitelist/manual", whitelistHandler.SetManualWhitelist)
			sales.PUT("/:id/whitelist/enabled", whitelistHandler.SetWhitelistEnabled)
			sales.GET("/:id/whitelist", whitelistHandler.GetWhitelistState)
			sales.GET("/:id/whitelist/info/:address", whitelistHandler.GetWhitelistInfo)
			sales.GET("/:id/whitelist/manual/:address", whitelistHandler.GetManualWhitelistStatus)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Sender, X-Gas-Price")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
