package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
	CourseRoot     string
	Passcode       string
	JWTSecret      string
	MaxUploadMB    int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró .env, se usan las ENV del sistema")
		} else {
			log.Println("✅ Archivo .env cargado")
		}
	} else {
		log.Println("🚀 Corriendo en Railway, se usan las ENV del sistema")
	}

	SupabaseURL = GetEnv("SUPABASE_URL")
	SupabaseKey = GetEnv("SUPABASE_KEY")
	SupabaseBucket = GetEnv("SUPABASE_BUCKET", "utn")
	CourseRoot = GetEnv("COURSE_ROOT", "Quimica_Organica")
	Passcode = GetEnv("PASSCODE", "FFCC")
	JWTSecret = GetEnv("JWT_SECRET")
	MaxUploadMB = GetEnvInt("MAX_UPLOAD_MB", 50)

	// Sin URL o sin service key no hay storage: cortar acá, no a mitad de request.
	if SupabaseURL == "" {
		log.Fatalf("❌ SUPABASE_URL no está seteada")
	}
	if SupabaseKey == "" {
		log.Fatalf("❌ SUPABASE_KEY no está seteada (service_role)")
	}
	if JWTSecret == "" {
		// Fallback: firmar con el passcode compartido. Alcanza para un aula.
		JWTSecret = "edit:" + Passcode
		log.Println("⚠️ JWT_SECRET no está seteada, se deriva del passcode")
	}

	log.Println("✅ Config cargada | bucket:", SupabaseBucket, "| root:", CourseRoot)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// MaxUploadBytes devuelve el límite de subida en bytes.
func MaxUploadBytes() int64 {
	return int64(MaxUploadMB) * 1024 * 1024
}
