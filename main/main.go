package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/multiboot2"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	for i := 0; i < 10000; i++ {
		raw := multiboot2.BuildStringTag(multiboot2.TagTypeBootLoaderName, []byte("GRUB 2.02~beta3-5"))
		tag, _ := multiboot2.ViewBootLoaderName(raw)
		tag.Name()
		tag.NameBytes()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
