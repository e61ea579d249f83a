package main

import (
	"context"

	"pno_restaurants/internal/api/initsvc"
	"pno_restaurants/internal/global"
	"pno_restaurants/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// 1. Đảm bảo schema có field kiểu restaurant (toàn bộ tính năng thực đơn phụ thuộc field này)
	log.Info("🔄 [INIT] Step 1: Initializing restaurant field...")
	if err := initService.InitRestaurantField(context.TODO()); err != nil {
		log.Fatalf("Failed to initialize restaurant field: %v", err)
	}
	log.Info("✅ [INIT] Step 1: Restaurant field initialized")

	// 2. Seed dữ liệu mẫu khi chạy ở chế độ khởi tạo
	if global.ServerConfig.InitMode {
		log.Info("🔄 [INIT] Step 2: Initializing sample data...")
		if err := initService.InitSampleData(context.TODO()); err != nil {
			log.Warnf("Failed to initialize sample data: %v", err)
		} else {
			log.Info("✅ [INIT] Step 2: Sample data initialized")
		}
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
