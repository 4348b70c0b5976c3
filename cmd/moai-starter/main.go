// @MX:ANCHOR: [AUTO] main 함수는 moai-starter CLI의 진입점입니다. 오류 종류에 따라 종료 코드를 반환합니다.
// @MX:REASON: 실행 가능한 바이너리의 유일한 진입점이며 CLI 명령 실행을 위임합니다
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/modu-ai/moai-starter/internal/apperr"
	"github.com/modu-ai/moai-starter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "moai-starter:", err)
		os.Exit(apperr.ExitCode(err))
	}
}
