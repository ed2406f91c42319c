package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/gomschap/pkg/crypto"
	"github.com/vitalvas/gomschap/pkg/mschap"
	"github.com/vitalvas/gomschap/pkg/packet"
)

// exchange holds the fields of one MS-CHAPv2 exchange as given on the command line.
type exchange struct {
	user          string
	password      string
	peerChallenge string
	authChallenge string
	ntResponse    string
}

func (e *exchange) challenges() (peer, auth [mschap.ChallengeLength]byte, err error) {
	if err = decodeFixed("peer", e.peerChallenge, peer[:]); err != nil {
		return peer, auth, err
	}
	err = decodeFixed("auth", e.authChallenge, auth[:])
	return peer, auth, err
}

func (e *exchange) addChallengeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&e.peerChallenge, "peer", "", "16-byte peer challenge (hex)")
	cmd.Flags().StringVar(&e.authChallenge, "auth", "", "16-byte authenticator challenge (hex)")
	cmd.Flags().StringVar(&e.user, "user", "", "user name as sent by the peer")
	_ = cmd.MarkFlagRequired("peer")
	_ = cmd.MarkFlagRequired("auth")
}

func (a *app) newNTHashCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "nthash",
		Short: "Print the NT password hash and its hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ntHash, err := mschap.NTHash(password)
			if err != nil {
				return err
			}

			hashHash := mschap.HashNTHash(ntHash)
			fmt.Fprintf(cmd.OutOrStdout(), "NT-Hash:      %X\nNT-Hash-Hash: %X\n", ntHash[:], hashHash[:])
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "cleartext password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) newChallengeHashCommand() *cobra.Command {
	var ex exchange

	cmd := &cobra.Command{
		Use:   "challenge-hash",
		Short: "Print the 8-byte challenge derived from both challenges and the user name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			peer, auth, err := ex.challenges()
			if err != nil {
				return err
			}

			challenge := mschap.ChallengeHash(peer, auth, []byte(ex.user))
			fmt.Fprintf(cmd.OutOrStdout(), "%X\n", challenge[:])
			return nil
		},
	}

	ex.addChallengeFlags(cmd)

	return cmd
}

func (a *app) newNTResponseCommand() *cobra.Command {
	var ex exchange

	cmd := &cobra.Command{
		Use:   "nt-response",
		Short: "Print the NT-Response a peer sends for the given password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			peer, auth, err := ex.challenges()
			if err != nil {
				return err
			}

			response, err := mschap.GenerateNTResponse(auth, peer, []byte(ex.user), ex.password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%X\n", response[:])
			return nil
		},
	}

	ex.addChallengeFlags(cmd)
	cmd.Flags().StringVar(&ex.password, "password", "", "cleartext password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *app) newAuthResponseCommand() *cobra.Command {
	var (
		ex       exchange
		hashHash string
	)

	cmd := &cobra.Command{
		Use:   "auth-response",
		Short: "Print the S= authenticator response for an NT-Response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			peer, auth, err := ex.challenges()
			if err != nil {
				return err
			}

			var ntResponse [mschap.NTResponseLength]byte
			if err := decodeFixed("nt-response", ex.ntResponse, ntResponse[:]); err != nil {
				return err
			}

			var hh [mschap.NTHashLength]byte
			switch {
			case hashHash != "":
				if err := decodeFixed("hash-hash", hashHash, hh[:]); err != nil {
					return err
				}
			case ex.password != "":
				ntHash, err := mschap.NTHash(ex.password)
				if err != nil {
					return err
				}
				hh = mschap.HashNTHash(ntHash)
			default:
				return fmt.Errorf("one of --password or --hash-hash is required")
			}

			fmt.Fprintln(cmd.OutOrStdout(), mschap.AuthenticatorResponse([]byte(ex.user), hh, ntResponse, peer, auth))
			return nil
		},
	}

	ex.addChallengeFlags(cmd)
	cmd.Flags().StringVar(&ex.password, "password", "", "cleartext password")
	cmd.Flags().StringVar(&hashHash, "hash-hash", "", "16-byte hash of the NT hash (hex)")
	cmd.Flags().StringVar(&ex.ntResponse, "nt-response", "", "24-byte NT-Response (hex)")
	_ = cmd.MarkFlagRequired("nt-response")
	cmd.MarkFlagsMutuallyExclusive("password", "hash-hash")

	return cmd
}

func (a *app) newReplyCommand() *cobra.Command {
	var (
		ex          exchange
		identifier  uint8
		ident       uint8
		secret      string
		requestAuth string
		mppe        bool
		msgAuth     bool
	)

	cmd := &cobra.Command{
		Use:   "reply",
		Short: "Verify an NT-Response and print the signed RADIUS reply (hex)",
		Long: `Verify an NT-Response against the password and print the signed
Access-Accept carrying MS-CHAP2-Success, or an Access-Reject carrying
MS-CHAP-Error when the response does not match. Without --nt-response the
expected response is used, which always yields an Access-Accept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			peer, auth, err := ex.challenges()
			if err != nil {
				return err
			}

			var reqAuth crypto.Authenticator
			if err := decodeFixed("request-authenticator", requestAuth, reqAuth[:]); err != nil {
				return err
			}

			dict, err := a.loadDictionary(cmd.Context())
			if err != nil {
				return err
			}

			ntHash, err := mschap.NTHash(ex.password)
			if err != nil {
				return err
			}

			expected, err := mschap.GenerateNTResponse(auth, peer, []byte(ex.user), ex.password)
			if err != nil {
				return err
			}

			ntResponse := expected
			if ex.ntResponse != "" {
				if err := decodeFixed("nt-response", ex.ntResponse, ntResponse[:]); err != nil {
					return err
				}
			}

			logger := a.logger.WithField("user", ex.user)

			var pkt *packet.Packet
			if subtle.ConstantTimeCompare(expected[:], ntResponse[:]) == 1 {
				pkt = packet.NewWithDictionary(packet.CodeAccessAccept, identifier, dict)
				reply := mschap.NewPacketReply(pkt)
				hashHash := mschap.HashNTHash(ntHash)

				if err := mschap.Success(reply, ident, []byte(ex.user), hashHash, ntResponse, peer, auth); err != nil {
					return err
				}

				if mppe {
					sendKey, recvKey := mschap.ServerKeys(hashHash, ntResponse)
					if err := mschap.AddMPPEKeys(reply, []byte(secret), reqAuth, sendKey, recvKey); err != nil {
						return err
					}
				}

				logger.Infof("NT-Response verified")
			} else {
				var retryChallenge [mschap.ChallengeLength]byte
				if _, err := rand.Read(retryChallenge[:]); err != nil {
					return fmt.Errorf("failed to generate challenge: %w", err)
				}

				pkt = packet.NewWithDictionary(packet.CodeAccessReject, identifier, dict)
				err := mschap.Failure(mschap.NewPacketReply(pkt), ident, mschap.ErrorAuthenticationFailed, false,
					retryChallenge, "Authentication failed")
				if err != nil {
					return err
				}

				logger.Warnf("NT-Response mismatch")
			}

			if msgAuth {
				if err := pkt.SignWithMessageAuthenticator([]byte(secret), reqAuth); err != nil {
					return fmt.Errorf("failed to sign reply: %w", err)
				}
			} else {
				pkt.Sign([]byte(secret), reqAuth)
			}

			data, err := pkt.Encode()
			if err != nil {
				return fmt.Errorf("failed to encode reply: %w", err)
			}

			logger.Debugf("reply %s", pkt)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}

	ex.addChallengeFlags(cmd)
	cmd.Flags().StringVar(&ex.password, "password", "", "cleartext password")
	cmd.Flags().StringVar(&ex.ntResponse, "nt-response", "", "24-byte NT-Response received from the peer (hex)")
	cmd.Flags().Uint8Var(&identifier, "id", 0, "RADIUS identifier of the Access-Request")
	cmd.Flags().Uint8Var(&ident, "ident", 0, "MS-CHAP identifier of the exchange")
	cmd.Flags().StringVar(&secret, "secret", "testing123", "RADIUS shared secret")
	cmd.Flags().StringVar(&requestAuth, "request-authenticator", "", "16-byte Request Authenticator of the Access-Request (hex)")
	cmd.Flags().BoolVar(&mppe, "mppe", false, "attach MS-MPPE-Send-Key and MS-MPPE-Recv-Key on success")
	cmd.Flags().BoolVar(&msgAuth, "message-authenticator", false, "attach a Message-Authenticator attribute")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("request-authenticator")

	return cmd
}
