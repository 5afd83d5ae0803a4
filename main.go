package main

import (
	"log"
	"net/http"
	"os"

	"github.com/nodirbekm/koreancosmetics/app/cmd"
	"github.com/nodirbekm/koreancosmetics/app/configs"
	"github.com/nodirbekm/koreancosmetics/app/routes"
)

func main() {

	env := configs.LoadENV
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router, err := routes.NewRouter(db, env)
	if err != nil {
		log.Fatal("Router setup failed:", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
