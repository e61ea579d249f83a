// Script bảo trì: chuẩn hóa các thực đơn còn lưu ở shape cũ bọc giá trị
// ([{value: X}] cho từng field) về shape phẳng canonical.
//
// Đường đọc vẫn chấp nhận shape cũ nên script này không bắt buộc, chạy để
// dữ liệu đồng nhất và dễ query trực tiếp.
//
// Chạy: go run scripts/normalize_menu_shapes.go
// Cần: MONGODB_CONNECTION_URI, MONGODB_DBNAME (từ .env hoặc env vars)
// Tùy chọn: META_KEY (mặc định restaurant_menu)
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	menusvc "pno_restaurants/internal/api/menu/service"
)

func loadScriptConfig() (uri, dbName string) {
	// Thử load .env từ nhiều vị trí
	tryPaths := []string{
		".env",
		"config/env/development.env",
	}
	cwd, _ := os.Getwd()
	for _, p := range tryPaths {
		full := filepath.Join(cwd, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
		// Thử từ thư mục cha (khi chạy từ scripts/)
		parent := filepath.Dir(cwd)
		full = filepath.Join(parent, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
	}
	return os.Getenv("MONGODB_CONNECTION_URI"), os.Getenv("MONGODB_DBNAME")
}

func main() {
	uri, dbName := loadScriptConfig()
	if uri == "" || dbName == "" {
		log.Fatal("Cần set MONGODB_CONNECTION_URI và MONGODB_DBNAME (trong .env hoặc env vars)")
	}

	metaKey := os.Getenv("META_KEY")
	if metaKey == "" {
		metaKey = "restaurant_menu"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Không kết nối được MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	collection := client.Database(dbName).Collection("pno_listing_meta")

	cursor, err := collection.Find(ctx, bson.M{"key": metaKey})
	if err != nil {
		log.Fatalf("Không query được listing meta: %v", err)
	}
	defer cursor.Close(ctx)

	total := 0
	updated := 0
	for cursor.Next(ctx) {
		var doc struct {
			ID    interface{} `bson:"_id"`
			Value interface{} `bson:"value"`
		}
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Bỏ qua document decode lỗi: %v", err)
			continue
		}
		total++

		normalized := menusvc.DecodeCollection(doc.Value)

		_, err := collection.UpdateOne(ctx,
			bson.M{"_id": doc.ID},
			bson.M{"$set": bson.M{"value": normalized, "updatedAt": time.Now().UnixMilli()}},
		)
		if err != nil {
			log.Printf("Không cập nhật được document %v: %v", doc.ID, err)
			continue
		}
		updated++
	}
	if err := cursor.Err(); err != nil {
		log.Fatalf("Cursor lỗi: %v", err)
	}

	fmt.Printf("Đã chuẩn hóa %d/%d thực đơn (meta key %q)\n", updated, total, metaKey)
}
