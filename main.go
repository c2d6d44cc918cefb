package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/term"

	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/cipher"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/config"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/handlers"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/keyutil"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/logging"
	"github.com/thomasNguyen-196/AES-128-Cipher-CLI/padding"
)

func main() {
	config.LoadEnv()

	var (
		modeFlag = flag.String("mode", "ecb", `operating mode: "ecb" or "cfb"`)
		decrypt  = flag.Bool("d", false, "decrypt instead of encrypt")
		keyFlag  = flag.String("key", "", "16-byte key as 32 hex chars or 16 UTF-8 chars (prompted if omitted)")
		ivFlag   = flag.String("iv", "", "16-byte IV for CFB as 32 hex chars or 16 UTF-8 chars")
		textFlag = flag.String("text", "", "plaintext to encrypt, or ciphertext hex to decrypt (prompted if omitted)")
		padFlag  = flag.String("padding", "pkcs7", "ECB padding scheme: pkcs7, ansix923, iso10126 or zeros")
		copyOut  = flag.Bool("copy", false, "copy the result to the clipboard")
		serve    = flag.Bool("serve", false, "run the HTTP API instead of the interactive CLI")
	)
	flag.Parse()

	if *serve {
		runServer()
		return
	}

	runCLI(*modeFlag, *keyFlag, *ivFlag, *textFlag, *padFlag, *decrypt, *copyOut)
}

func runServer() {
	logging.InitFileLoggers()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.GetEnv("ALLOWED_ORIGIN", "http://localhost:3000")}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	cipherHandler := handlers.NewCipherHandler()

	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		ciph := api.Group("/cipher")
		{
			ciph.POST("/encrypt", cipherHandler.Encrypt)
			ciph.POST("/decrypt", cipherHandler.Decrypt)
		}
	}

	port := config.GetEnv("PORT", "8080")
	logging.InfoLog.Printf("AES-128 cipher API listening on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST /api/v1/cipher/encrypt - encrypt text (ECB or CFB), returns cipher hex + IV hex")
	log.Printf("  POST /api/v1/cipher/decrypt - decrypt cipher hex back to text")
	log.Printf("  GET  /api/v1/health         - health check")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func runCLI(modeName, keyText, ivText, text, padName string, decrypt, copyOut bool) {
	printBanner()

	mode, err := cipher.ParseMode(modeName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pad, err := padding.ByName(padName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if keyText == "" {
		keyText = promptKey()
	}
	key, err := keyutil.NormalizeKey(keyText)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var iv []byte
	if ivText != "" {
		if iv, err = keyutil.NormalizeIV(ivText); err != nil {
			log.Fatalf("%v", err)
		}
	}

	if text == "" {
		label := "Text to encrypt"
		if decrypt {
			label = "Ciphertext (hex)"
		}
		text = promptLine(label)
	}

	cc, err := cipher.NewCipher(key, mode, pad)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var result string
	if decrypt {
		ciphertext, err := keyutil.DecodeHex(text)
		if err != nil {
			log.Fatalf("%v", err)
		}
		plaintext, err := cc.Decrypt(ciphertext, iv)
		if err != nil {
			log.Fatalf("decryption failed: %v", err)
		}
		result = string(plaintext)
		color.New(color.FgGreen).Printf("Plaintext: %s\n", result)
	} else {
		ivUsed, ciphertext, err := cc.Encrypt([]byte(text), iv)
		if err != nil {
			log.Fatalf("encryption failed: %v", err)
		}
		result = keyutil.EncodeHex(ciphertext)
		color.New(color.FgGreen).Printf("Ciphertext: %s\n", result)
		if ivUsed != nil {
			color.New(color.FgYellow).Printf("IV:         %s\n", keyutil.EncodeHex(ivUsed))
			fmt.Println("Keep the IV; it is required to decrypt and is not part of the ciphertext.")
		}
	}

	if copyOut {
		if err := clipboard.WriteAll(result); err != nil {
			log.Printf("could not copy to clipboard: %v", err)
		} else {
			fmt.Println("Result copied to clipboard.")
		}
	}
}

func printBanner() {
	color.New(color.FgCyan, color.Bold).Println("AES-128 Cipher (ECB / CFB)")
	color.New(color.FgCyan).Println("==========================")
}

// promptKey reads the key without echoing it to the terminal. Falls back to
// a plain line read when stdin is not a terminal (e.g. piped input).
func promptKey() string {
	fmt.Print("Key: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			log.Fatalf("reading key: %v", err)
		}
		return string(raw)
	}
	return readLine()
}

func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	return readLine()
}

func readLine() string {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("reading input: %v", err)
	}
	return strings.TrimRight(line, "\r\n")
}
