package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SourceRepository --dir ../domain/season --output domain/season --outpkg seasonmock --filename source_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/standings --output domain/standings --outpkg standingsmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/postseason --output domain/postseason --outpkg postseasonmock --filename repository_mock.go
