//go:generate mockgen -source=../message_repository.go   -destination=./mock_message_repository.go   -package=mocks
//go:generate mockgen -source=../message_cache.go        -destination=./mock_message_cache.go        -package=mocks
//go:generate mockgen -source=../message_decoder.go      -destination=./mock_message_decoder.go      -package=mocks
//go:generate mockgen -source=../classifier.go           -destination=./mock_classifier.go           -package=mocks
//go:generate mockgen -source=../scorer.go               -destination=./mock_scorer.go               -package=mocks
//go:generate mockgen -source=../alert_dispatcher.go     -destination=./mock_alert_dispatcher.go     -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks
//go:generate mockgen -source=../message_read_service.go -destination=./mock_message_read_service.go -package=mocks

package mocks
