package wakepair_test

import (
	"fmt"
	"time"

	"github.com/joeycumines/go-wakepair"
)

func ExamplePair() {
	pair, err := wakepair.New()
	if err != nil {
		panic(err)
	}
	defer pair.Close()

	go func() {
		time.Sleep(10 * time.Millisecond)
		pair.Signal()
	}()

	ok, err := pair.Wait(5 * time.Second)
	fmt.Println(ok, err)

	ok, err = pair.Wait(0)
	fmt.Println(ok, err)

	//output:
	//true <nil>
	//false <nil>
}

func ExamplePair_Signal_coalescing() {
	pair, err := wakepair.New()
	if err != nil {
		panic(err)
	}
	defer pair.Close()

	fmt.Println(pair.Signal())
	fmt.Println(pair.Signal())
	fmt.Println(pair.Wait(0))
	fmt.Println(pair.Signal())

	//output:
	//notified
	//coalesced
	//true <nil>
	//notified
}
